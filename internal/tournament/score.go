package tournament

import (
	"math"
	"math/rand"
)

// Scorer draws a single match score from a distribution with the given mean.
type Scorer interface {
	Sample(lambda float64) int
}

// PoissonScorer samples scores from a Poisson distribution using Knuth's
// algorithm. All randomness comes from the injected rand.Rand, so a fixed
// seed reproduces the exact score sequence.
type PoissonScorer struct {
	rng *rand.Rand
}

func NewPoissonScorer(rng *rand.Rand) *PoissonScorer {
	return &PoissonScorer{rng: rng}
}

// Sample returns a non-negative score. Terminates for any lambda, but callers
// keep lambda strictly positive for realistic results.
func (p *PoissonScorer) Sample(lambda float64) int {
	l := math.Exp(-lambda)
	prod := 1.0
	k := 0
	for prod > l {
		k++
		prod *= p.rng.Float64()
	}
	return k - 1
}
