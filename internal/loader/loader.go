// Package loader parses roster, exhibition and display-name files at the
// process boundary. The tournament core only ever sees well-formed
// structures; anything unreadable or unparseable is an error here.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	yaml "gopkg.in/yaml.v2"

	"github.com/keremaydin/basketball-sim/internal/tournament"
)

type teamEntry struct {
	Name    string  `json:"name" yaml:"name"`
	Ranking float64 `json:"ranking" yaml:"ranking"`
}

type exhibitionEntry struct {
	Opponent string `json:"opponent" yaml:"opponent"`
	Result   string `json:"result" yaml:"result"`
}

// LoadGroups reads group rosters from a JSON or YAML file keyed by group
// label. Groups come back sorted by label so a run is deterministic
// regardless of map iteration order.
func LoadGroups(path string) ([]tournament.Group, error) {
	var byLabel map[string][]teamEntry
	if err := unmarshalFile(path, &byLabel); err != nil {
		return nil, fmt.Errorf("loading groups: %w", err)
	}
	if len(byLabel) == 0 {
		return nil, fmt.Errorf("loading groups: %s contains no groups", path)
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	groups := make([]tournament.Group, 0, len(labels))
	for _, label := range labels {
		entries := byLabel[label]
		if len(entries) == 0 {
			return nil, fmt.Errorf("loading groups: group %s is empty", label)
		}
		g := tournament.Group{Label: label}
		for _, e := range entries {
			if e.Name == "" {
				return nil, fmt.Errorf("loading groups: group %s has a team without a name", label)
			}
			g.Teams = append(g.Teams, &tournament.Team{Name: e.Name, Ranking: e.Ranking})
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// LoadExhibitions reads each team's exhibition history from a JSON or YAML
// file keyed by team name. Entries are passed through as-is; per-team result
// validation happens in the form computation, which tolerates bad lines.
func LoadExhibitions(path string) (map[string][]tournament.ExhibitionMatch, error) {
	var byTeam map[string][]exhibitionEntry
	if err := unmarshalFile(path, &byTeam); err != nil {
		return nil, fmt.Errorf("loading exhibitions: %w", err)
	}

	history := make(map[string][]tournament.ExhibitionMatch, len(byTeam))
	for name, entries := range byTeam {
		matches := make([]tournament.ExhibitionMatch, 0, len(entries))
		for _, e := range entries {
			matches = append(matches, tournament.ExhibitionMatch{Opponent: e.Opponent, Result: e.Result})
		}
		history[name] = matches
	}
	return history, nil
}

// LoadNames reads the optional short-code to display-name table.
func LoadNames(path string) (map[string]string, error) {
	var names map[string]string
	if err := unmarshalFile(path, &names); err != nil {
		return nil, fmt.Errorf("loading names: %w", err)
	}
	return names, nil
}

func unmarshalFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("bad JSON in %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("bad YAML in %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported file format %q for %s", ext, path)
	}
	return nil
}
