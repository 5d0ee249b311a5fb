package tournament

import (
	"math/rand"
)

const (
	// baselinePoints is the expected score of a team against an equally
	// ranked opponent.
	baselinePoints = 80.0
	// rankingFactor scales the ranking differential into expected points.
	// A numerically smaller opponent ranking lowers your expectation;
	// the sign convention is deliberate and must not be flipped.
	rankingFactor = 0.1
	// shootoutRange bounds a single penalty round score, exclusive.
	shootoutRange = 5
)

// Engine plays one match between two teams. Form is an additive adjustment
// to the expected score; the group stage passes zero for both sides.
type Engine interface {
	Play(home, away *Team, homeForm, awayForm int) (homeScore, awayScore int)
}

// KnockoutEngine additionally resolves tied knockout matches by penalty
// shootout. A single shootout can itself tie; callers loop until it breaks.
type KnockoutEngine interface {
	Engine
	Shootout() (homeScore, awayScore int)
}

// Simulator is the production match engine: Poisson-distributed scores
// around a ranking- and form-adjusted mean.
type Simulator struct {
	scorer Scorer
	rng    *rand.Rand
}

func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{scorer: NewPoissonScorer(rng), rng: rng}
}

func expectedPoints(ranking, opponent float64) float64 {
	return baselinePoints + (opponent-ranking)*rankingFactor
}

// Play draws both scores independently. Home is drawn first, so the random
// call order is fixed for a given seed.
func (s *Simulator) Play(home, away *Team, homeForm, awayForm int) (int, int) {
	homeLambda := expectedPoints(home.Ranking, away.Ranking) + float64(homeForm)
	awayLambda := expectedPoints(away.Ranking, home.Ranking) + float64(awayForm)
	return s.scorer.Sample(homeLambda), s.scorer.Sample(awayLambda)
}

// Shootout draws one penalty round for each side, each uniform in [0,5).
func (s *Simulator) Shootout() (int, int) {
	return s.rng.Intn(shootoutRange), s.rng.Intn(shootoutRange)
}
