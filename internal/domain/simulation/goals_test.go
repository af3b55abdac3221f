package simulation

import (
	"math"
	"math/rand/v2"
	"testing"
)

// fixedSource always yields the same word so Float64 returns a known value.
type fixedSource uint64

func (s fixedSource) Uint64() uint64 { return uint64(s) }

func uniformAt(u float64) *rand.Rand {
	return rand.New(fixedSource(uint64(u * (1 << 53))))
}

func TestPoissonProbability(t *testing.T) {
	if got := PoissonProbability(1, 0); math.Abs(got-math.Exp(-1)) > 1e-12 {
		t.Fatalf("unexpected P(0;1): %v", got)
	}
	if got := PoissonProbability(2, 3); math.Abs(got-math.Exp(-2)*8/6) > 1e-12 {
		t.Fatalf("unexpected P(3;2): %v", got)
	}

	sum := 0.0
	for k := 0; k <= 30; k++ {
		sum += PoissonProbability(1.7, k)
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("pmf does not sum to 1: %v", sum)
	}
}

func TestSampleGoals_InverseCDF(t *testing.T) {
	cases := []struct {
		name string
		xg   float64
		u    float64
		want int
	}{
		{name: "zero draw", xg: 1, u: 0, want: 0},
		{name: "inside first bucket", xg: 1, u: 0.3, want: 0},
		{name: "second bucket", xg: 1, u: 0.5, want: 1},
		{name: "third bucket", xg: 1, u: 0.8, want: 2},
		{name: "below minimum is clamped", xg: 0, u: 0.74, want: 0},
		{name: "tail folds into max", xg: 3.5, u: 0.9999999, want: MaxGoals},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SampleGoals(tc.xg, uniformAt(tc.u)); got != tc.want {
				t.Fatalf("unexpected goals: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestSampleGoals_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for _, xg := range []float64{0.3, 1, 2.2, 3.5} {
		for i := 0; i < 5000; i++ {
			got := SampleGoals(xg, rng)
			if got < 0 || got > MaxGoals {
				t.Fatalf("goals out of range for xg=%v: %d", xg, got)
			}
		}
	}
}
