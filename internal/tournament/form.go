package tournament

import (
	"fmt"
	"strconv"
	"strings"
)

// ComputeForm sums the goal differential of every exhibition match per team.
// Form is computed once before the tournament and read-only afterwards; only
// the knockout rounds feed it into the match engine.
//
// A team with any malformed history entry gets form 0 rather than failing
// the run: exhibition data is advisory, not structural.
func ComputeForm(history map[string][]ExhibitionMatch) map[string]int {
	form := make(map[string]int, len(history))
	for name, matches := range history {
		total := 0
		valid := true
		for _, m := range matches {
			diff, err := resultDiff(m.Result)
			if err != nil {
				valid = false
				break
			}
			total += diff
		}
		if !valid {
			form[name] = 0
			continue
		}
		form[name] = total
	}
	return form
}

// resultDiff parses an "X-Y" score line into scored minus conceded.
func resultDiff(result string) (int, error) {
	parts := strings.Split(result, "-")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed result %q", result)
	}
	scored, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("malformed result %q: %w", result, err)
	}
	conceded, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("malformed result %q: %w", result, err)
	}
	return scored - conceded, nil
}
