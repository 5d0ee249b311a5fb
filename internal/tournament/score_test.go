package tournament

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoissonSampleNonNegative(t *testing.T) {
	scorer := NewPoissonScorer(rand.New(rand.NewSource(1)))
	for i := 0; i < 5000; i++ {
		assert.GreaterOrEqual(t, scorer.Sample(80), 0)
	}
}

func TestPoissonSampleMeanConvergesToLambda(t *testing.T) {
	cases := []float64{3.5, 80, 110}
	for _, lambda := range cases {
		scorer := NewPoissonScorer(rand.New(rand.NewSource(42)))
		const n = 20000
		sum := 0
		for i := 0; i < n; i++ {
			sum += scorer.Sample(lambda)
		}
		mean := float64(sum) / n
		// Standard error of the mean is sqrt(lambda/n); one point of slack
		// is over ten standard errors at these sizes.
		assert.InDelta(t, lambda, mean, 1.0, "lambda %v", lambda)
	}
}

func TestPoissonSampleDeterministicForSeed(t *testing.T) {
	a := NewPoissonScorer(rand.New(rand.NewSource(7)))
	b := NewPoissonScorer(rand.New(rand.NewSource(7)))
	for i := 0; i < 200; i++ {
		assert.Equal(t, a.Sample(80), b.Sample(80))
	}
}

func TestPoissonSampleTinyLambdaTerminates(t *testing.T) {
	scorer := NewPoissonScorer(rand.New(rand.NewSource(3)))
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, scorer.Sample(0.001), 0)
	}
}
