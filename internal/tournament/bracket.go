package tournament

// KnockoutMatch is one played single-elimination match. When the regulation
// score tied, HomePenalties/AwayPenalties hold the decisive shootout round.
type KnockoutMatch struct {
	Stage                Stage
	Home, Away           *Team
	HomeScore, AwayScore int
	WentToShootout       bool
	HomePenalties        int
	AwayPenalties        int
}

// Winner returns the advancing team.
func (m *KnockoutMatch) Winner() *Team {
	if m.WentToShootout {
		if m.HomePenalties > m.AwayPenalties {
			return m.Home
		}
		return m.Away
	}
	if m.HomeScore > m.AwayScore {
		return m.Home
	}
	return m.Away
}

// Loser returns the eliminated team.
func (m *KnockoutMatch) Loser() *Team {
	if m.Winner() == m.Home {
		return m.Away
	}
	return m.Home
}

// BracketResult is the outcome of the knockout rounds.
type BracketResult struct {
	Matches  []KnockoutMatch
	Champion *Team
	RunnerUp *Team
	Third    *Team
}

// RunBracket plays quarterfinals, semifinals and the final over the drawn
// pairs, in bracket order with no re-seeding: the winners of pairs one and
// two meet in the first semifinal, the winners of pairs three and four in
// the second. Knockout matches apply each team's precomputed form.
//
// With thirdPlacePlayoff disabled the final's loser is reported as both
// runner-up and third place, matching the original behavior; enabled, the
// two semifinal losers play a genuine third-place match.
func RunBracket(pairs []Pair, form map[string]int, engine KnockoutEngine, thirdPlacePlayoff bool) BracketResult {
	var result BracketResult

	qf, qfWinners, _ := playRound(Quarterfinal, pairs, form, engine)
	result.Matches = append(result.Matches, qf...)

	sfPairs := advance(qfWinners)
	sf, sfWinners, sfLosers := playRound(Semifinal, sfPairs, form, engine)
	result.Matches = append(result.Matches, sf...)

	finalPairs := advance(sfWinners)
	finals, finalWinners, finalLosers := playRound(Final, finalPairs, form, engine)
	result.Matches = append(result.Matches, finals...)

	result.Champion = finalWinners[0]
	result.RunnerUp = finalLosers[0]
	result.Third = result.RunnerUp

	if thirdPlacePlayoff {
		third, thirdWinners, _ := playRound(ThirdPlace, advance(sfLosers), form, engine)
		result.Matches = append(result.Matches, third...)
		result.Third = thirdWinners[0]
	}
	return result
}

// advance pairs winners sequentially for the next round.
func advance(teams []*Team) []Pair {
	pairs := make([]Pair, 0, len(teams)/2)
	for i := 0; i+1 < len(teams); i += 2 {
		pairs = append(pairs, Pair{Home: teams[i], Away: teams[i+1]})
	}
	return pairs
}

func playRound(stage Stage, pairs []Pair, form map[string]int, engine KnockoutEngine) (matches []KnockoutMatch, winners, losers []*Team) {
	for _, p := range pairs {
		m := KnockoutMatch{Stage: stage, Home: p.Home, Away: p.Away}
		m.HomeScore, m.AwayScore = engine.Play(p.Home, p.Away, form[p.Home.Name], form[p.Away.Name])
		if m.HomeScore == m.AwayScore {
			m.WentToShootout = true
			// A shootout round can tie as well; re-roll until it breaks.
			for {
				m.HomePenalties, m.AwayPenalties = engine.Shootout()
				if m.HomePenalties != m.AwayPenalties {
					break
				}
			}
		}
		matches = append(matches, m)
		winners = append(winners, m.Winner())
		losers = append(losers, m.Loser())
	}
	return matches, winners, losers
}
