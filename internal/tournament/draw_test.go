package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rankedEntries builds a pre-ranked table in the given order.
func rankedEntries(names ...string) []*TableEntry {
	entries := make([]*TableEntry, len(names))
	for i, n := range names {
		entries[i] = &TableEntry{Team: &Team{Name: n}}
	}
	return entries
}

func pairNames(pairs []Pair) [][2]string {
	out := make([][2]string, len(pairs))
	for i, p := range pairs {
		out[i] = [2]string{p.Home.Name, p.Away.Name}
	}
	return out
}

func TestDrawWithoutConstraints(t *testing.T) {
	ranked := rankedEntries("T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8")

	pairs, err := DrawQuarterfinals(ranked, NewPlayedSet())
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"T1", "T7"}, {"T2", "T8"}, {"T3", "T5"}, {"T4", "T6"},
	}, pairNames(pairs))
}

func TestDrawForcedPairing(t *testing.T) {
	// T1 already met every hat-four team except T8: the draw must pair them
	// on the first attempt.
	ranked := rankedEntries("T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8")
	played := NewPlayedSet()
	played.Add("T1", "T7")

	pairs, err := DrawQuarterfinals(ranked, played)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"T1", "T8"}, {"T2", "T7"}, {"T3", "T5"}, {"T4", "T6"},
	}, pairNames(pairs))
}

func TestDrawRotationRetry(t *testing.T) {
	// First attempt strands T2 (T8 is its only remaining option and they
	// already met); one rotation of hats three and four resolves it.
	ranked := rankedEntries("T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8")
	played := NewPlayedSet()
	played.Add("T2", "T8")

	pairs, err := DrawQuarterfinals(ranked, played)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"T1", "T8"}, {"T2", "T7"}, {"T3", "T6"}, {"T4", "T5"},
	}, pairNames(pairs))
}

func TestDrawNeverRepeatsGroupPairing(t *testing.T) {
	ranked := rankedEntries("T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8")
	played := NewPlayedSet()
	played.Add("T1", "T7")
	played.Add("T3", "T5")
	played.Add("T4", "T6")

	pairs, err := DrawQuarterfinals(ranked, played)
	require.NoError(t, err)
	require.Len(t, pairs, 4)

	seen := map[string]bool{}
	for _, p := range pairs {
		assert.False(t, played.Played(p.Home.Name, p.Away.Name),
			"%s-%s repeats a group-stage matchup", p.Home.Name, p.Away.Name)
		seen[p.Home.Name] = true
		seen[p.Away.Name] = true
	}
	assert.Len(t, seen, 8)
}

func TestDrawUnsatisfiable(t *testing.T) {
	// T1 has met both hat-four teams; no rotation can help.
	ranked := rankedEntries("T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8")
	played := NewPlayedSet()
	played.Add("T1", "T7")
	played.Add("T1", "T8")

	pairs, err := DrawQuarterfinals(ranked, played)
	assert.Nil(t, pairs)
	assert.ErrorIs(t, err, ErrDrawUnsatisfiable)
}

func TestDrawRequiresEightTeams(t *testing.T) {
	_, err := DrawQuarterfinals(rankedEntries("T1", "T2", "T3"), NewPlayedSet())
	assert.Error(t, err)
}
