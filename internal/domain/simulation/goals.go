package simulation

import (
	"math"
	"math/rand/v2"
)

// MaxGoals is the highest modelled goal count; the Poisson tail above it folds into this bucket.
const MaxGoals = 7

// SampleGoals draws a goal count for the given expected goals by walking the
// cumulative Poisson distribution with a single uniform draw from rng.
func SampleGoals(expectedGoals float64, rng *rand.Rand) int {
	lambda := max(MinExpectedGoals, expectedGoals)
	u := rng.Float64()

	cumulative := 0.0
	for k := 0; k <= MaxGoals; k++ {
		cumulative += PoissonProbability(lambda, k)
		if u <= cumulative {
			return k
		}
	}

	return MaxGoals
}

// PoissonProbability returns P(X = k) for a Poisson variable with mean lambda.
func PoissonProbability(lambda float64, k int) float64 {
	return math.Exp(-lambda) * math.Pow(lambda, float64(k)) / factorial(k)
}

func factorial(n int) float64 {
	out := 1.0
	for i := 2; i <= n; i++ {
		out *= float64(i)
	}
	return out
}
