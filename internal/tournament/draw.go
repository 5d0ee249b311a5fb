package tournament

import (
	"errors"
	"fmt"
)

const (
	// TeamRankLimit is how many teams advance to the knockout stage.
	TeamRankLimit = 8
	// maxDrawAttempts bounds the rotation retry loop. Two-team hats only
	// have four distinct rotation states, so eight attempts is already
	// exhaustive; hitting the bound means no valid draw exists.
	maxDrawAttempts = 8
)

// ErrDrawUnsatisfiable is returned when no rotation of the hats yields a
// bracket that avoids every recorded group-stage pairing.
var ErrDrawUnsatisfiable = errors.New("tournament: knockout draw unsatisfiable")

// Pair is one drawn knockout matchup.
type Pair struct {
	Home, Away *Team
}

// DrawQuarterfinals splits the top eight ranked entries into four seeding
// hats (ranks 1-2, 3-4, 5-6, 7-8) and searches for a draw in which hat one
// meets hat four and hat two meets hat three without repeating any
// group-stage pairing. Each source team takes the first unused, not yet
// played opponent in current hat order; when fewer than four pairs form, all
// pairs are discarded and hats three and four are rotated by one before
// retrying.
func DrawQuarterfinals(ranked []*TableEntry, played PlayedSet) ([]Pair, error) {
	if len(ranked) < TeamRankLimit {
		return nil, fmt.Errorf("tournament: knockout draw needs %d teams, have %d", TeamRankLimit, len(ranked))
	}

	teams := make([]*Team, TeamRankLimit)
	for i := range teams {
		teams[i] = ranked[i].Team
	}
	hat1 := teams[0:2]
	hat2 := teams[2:4]
	hat3 := append([]*Team(nil), teams[4:6]...)
	hat4 := append([]*Team(nil), teams[6:8]...)

	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		used := make(map[string]bool, TeamRankLimit)
		pairs := matchHats(hat1, hat4, played, used)
		pairs = append(pairs, matchHats(hat2, hat3, played, used)...)
		if len(pairs) == TeamRankLimit/2 {
			return pairs, nil
		}
		rotate(hat4)
		rotate(hat3)
	}
	return nil, ErrDrawUnsatisfiable
}

// matchHats greedily pairs each source-hat team with the first target-hat
// team that is unused and has not met it in the group stage.
func matchHats(src, dst []*Team, played PlayedSet, used map[string]bool) []Pair {
	pairs := make([]Pair, 0, len(src))
	for _, a := range src {
		for _, b := range dst {
			if used[b.Name] || played.Played(a.Name, b.Name) {
				continue
			}
			used[b.Name] = true
			pairs = append(pairs, Pair{Home: a, Away: b})
			break
		}
	}
	return pairs
}

// rotate moves the first team of a hat to the end. Membership never changes,
// only order, which is what the retry loop varies.
func rotate(hat []*Team) {
	if len(hat) < 2 {
		return
	}
	first := hat[0]
	copy(hat, hat[1:])
	hat[len(hat)-1] = first
}
