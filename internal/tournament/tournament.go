package tournament

// Team is a tournament participant. Ranking is a strength index fed into the
// expected-points formula; it is never modified during a run.
type Team struct {
	Name    string
	Ranking float64
}

// Group is a fixed roster of teams playing a round robin among themselves.
type Group struct {
	Label string
	Teams []*Team
}

// MatchResult is the final score of one simulated match.
type MatchResult struct {
	Home, Away           *Team
	HomeScore, AwayScore int
}

// Stage identifies where in the tournament a match was played.
type Stage int

const (
	GroupStage Stage = iota
	Quarterfinal
	Semifinal
	ThirdPlace
	Final
)

func (s Stage) String() string {
	switch s {
	case GroupStage:
		return "group"
	case Quarterfinal:
		return "quarterfinal"
	case Semifinal:
		return "semifinal"
	case ThirdPlace:
		return "third-place"
	case Final:
		return "final"
	}
	return "unknown"
}

// ExhibitionMatch is one historical exhibition result for a team,
// with the score from that team's perspective ("82-76").
type ExhibitionMatch struct {
	Opponent string
	Result   string
}
