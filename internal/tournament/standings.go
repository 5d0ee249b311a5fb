package tournament

import "sort"

const (
	winPoints  = 2
	lossPoints = 1
)

// TableEntry holds one team's accumulated record.
type TableEntry struct {
	Team     *Team
	Wins     int
	Losses   int
	Points   int
	Scored   int
	Conceded int
}

// GoalDiff is the scored/conceded differential used as the second sort key.
func (e *TableEntry) GoalDiff() int { return e.Scored - e.Conceded }

// Standings accumulates match results for a fixed set of teams. Entries keep
// their insertion order; Table returns a stably sorted copy, so fully tied
// teams stay in roster order for a given seed.
type Standings struct {
	entries []*TableEntry
	index   map[string]*TableEntry
}

func NewStandings(teams []*Team) *Standings {
	s := &Standings{index: make(map[string]*TableEntry, len(teams))}
	for _, t := range teams {
		e := &TableEntry{Team: t}
		s.entries = append(s.entries, e)
		s.index[t.Name] = e
	}
	return s
}

// Entry returns the record for a team name, or nil if unknown.
func (s *Standings) Entry(name string) *TableEntry { return s.index[name] }

// Apply folds one match result into the standings. Scored and conceded
// always accumulate on both sides; the winner takes 2 points and a win, the
// loser 1 point and a loss. An exact tie changes neither points nor the
// win/loss columns: the group stage has no draw category.
func (s *Standings) Apply(res MatchResult) {
	home := s.index[res.Home.Name]
	away := s.index[res.Away.Name]

	home.Scored += res.HomeScore
	home.Conceded += res.AwayScore
	away.Scored += res.AwayScore
	away.Conceded += res.HomeScore

	switch {
	case res.HomeScore > res.AwayScore:
		home.Points += winPoints
		home.Wins++
		away.Points += lossPoints
		away.Losses++
	case res.AwayScore > res.HomeScore:
		away.Points += winPoints
		away.Wins++
		home.Points += lossPoints
		home.Losses++
	}
}

// Table returns the entries ranked by points, goal difference, then scored.
func (s *Standings) Table() []*TableEntry {
	table := make([]*TableEntry, len(s.entries))
	copy(table, s.entries)
	return RankEntries(table)
}

// RankEntries stably sorts entries in place by the standings key
// (points desc, goal difference desc, scored desc) and returns the slice.
// The same key ranks teams across groups for the knockout cut.
func RankEntries(entries []*TableEntry) []*TableEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff() != b.GoalDiff() {
			return a.GoalDiff() > b.GoalDiff()
		}
		return a.Scored > b.Scored
	})
	return entries
}
