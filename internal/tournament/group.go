package tournament

// PlayedSet records which unordered pairs of teams have met in the group
// stage. It only grows during the group stage and is read-only afterwards,
// when the knockout draw consults it.
type PlayedSet map[string]map[string]bool

func NewPlayedSet() PlayedSet { return make(PlayedSet) }

func (p PlayedSet) Add(a, b string) {
	if p[a] == nil {
		p[a] = make(map[string]bool)
	}
	if p[b] == nil {
		p[b] = make(map[string]bool)
	}
	p[a][b] = true
	p[b][a] = true
}

func (p PlayedSet) Played(a, b string) bool { return p[a][b] }

// GroupResult is the outcome of one group's round robin.
type GroupResult struct {
	Label   string
	Table   []*TableEntry
	Matches []MatchResult
}

// PlayGroups runs a single round robin in every group: each unordered pair
// plays exactly once, in nested-loop order, so randomness is consumed
// pair-by-pair deterministically. Form is ignored in the group stage.
func PlayGroups(groups []Group, engine Engine) ([]GroupResult, PlayedSet) {
	played := NewPlayedSet()
	results := make([]GroupResult, 0, len(groups))

	for _, g := range groups {
		standings := NewStandings(g.Teams)
		matches := make([]MatchResult, 0, len(g.Teams)*(len(g.Teams)-1)/2)

		for i := 0; i < len(g.Teams); i++ {
			for j := i + 1; j < len(g.Teams); j++ {
				home, away := g.Teams[i], g.Teams[j]
				homeScore, awayScore := engine.Play(home, away, 0, 0)
				res := MatchResult{Home: home, Away: away, HomeScore: homeScore, AwayScore: awayScore}
				standings.Apply(res)
				played.Add(home.Name, away.Name)
				matches = append(matches, res)
			}
		}

		results = append(results, GroupResult{
			Label:   g.Label,
			Table:   standings.Table(),
			Matches: matches,
		})
	}
	return results, played
}
