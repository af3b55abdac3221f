package prediction

import (
	"context"
	"math"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-simulator/internal/domain/simulation"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

const (
	DefaultIterations    = 1000
	DefaultWorkers       = 4
	DefaultMinPlayedWeek = 4

	cancelCheckEvery = 64
)

type Config struct {
	Iterations int
	Workers    int
	// Seed makes rollouts reproducible; nil draws fresh streams per call.
	Seed          *int64
	MinPlayedWeek int
}

// Predictor estimates title chances by replaying the rest of the season many
// times. It only reads the fixtures it is given.
type Predictor struct {
	cfg Config
}

func NewPredictor(cfg Config) *Predictor {
	if cfg.Iterations <= 0 {
		cfg.Iterations = DefaultIterations
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.MinPlayedWeek <= 0 {
		cfg.MinPlayedWeek = DefaultMinPlayedWeek
	}
	return &Predictor{cfg: cfg}
}

func (p *Predictor) Iterations() int {
	return p.cfg.Iterations
}

// Ready reports whether enough weeks are played to publish predictions.
func (p *Predictor) Ready(fixtures []fixture.Fixture) bool {
	return fixture.MaxPlayedWeek(fixtures) >= p.cfg.MinPlayedWeek
}

// Predict returns ok=false while fewer than MinPlayedWeek weeks are played.
// A finished season gives the leader 100 and everyone else 0.
func (p *Predictor) Predict(ctx context.Context, teams []team.Team, fixtures []fixture.Fixture) ([]TeamPrediction, bool, error) {
	if !p.Ready(fixtures) {
		return nil, false, nil
	}

	ordered := append([]team.Team(nil), teams...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Name < ordered[j].Name
	})
	if len(ordered) == 0 {
		return []TeamPrediction{}, true, nil
	}

	matches := fixture.AllMatches(fixtures)
	played := leaguestanding.ResultsFromMatches(matches)
	remaining := make([]fixture.Match, 0, len(matches))
	for _, m := range matches {
		if !m.IsPlayed {
			remaining = append(remaining, m)
		}
	}

	probabilities := make(map[int64]float64, len(ordered))
	if len(remaining) == 0 {
		table := leaguestanding.ComputeTableFromResults(ordered, played)
		probabilities[table[0].TeamID] = 100
		return buildPredictions(ordered, probabilities), true, nil
	}

	wins, err := p.rollout(ctx, ordered, played, remaining)
	if err != nil {
		return nil, false, err
	}
	for i, t := range ordered {
		probabilities[t.ID] = float64(wins[i]) / float64(p.cfg.Iterations) * 100
	}

	return buildPredictions(ordered, probabilities), true, nil
}

type pendingMatch struct {
	homeTeamID int64
	awayTeamID int64
	homeXG     float64
	awayXG     float64
}

// rollout returns how often each team (indexed like ordered) finished first.
func (p *Predictor) rollout(ctx context.Context, ordered []team.Team, played []leaguestanding.Result, remaining []fixture.Match) ([]int, error) {
	lookup := team.NewLookup(ordered)
	pending := make([]pendingMatch, 0, len(remaining))
	for _, m := range remaining {
		home, ok := lookup[m.HomeTeamID]
		if !ok {
			return nil, errors.Wrapf(simulation.ErrUnknownTeam, "match=%d home team=%d", m.ID, m.HomeTeamID)
		}
		away, ok := lookup[m.AwayTeamID]
		if !ok {
			return nil, errors.Wrapf(simulation.ErrUnknownTeam, "match=%d away team=%d", m.ID, m.AwayTeamID)
		}
		pending = append(pending, pendingMatch{
			homeTeamID: home.ID,
			awayTeamID: away.ID,
			homeXG:     simulation.ExpectedGoals(home, true, away),
			awayXG:     simulation.ExpectedGoals(away, false, home),
		})
	}

	positionByID := make(map[int64]int, len(ordered))
	for i, t := range ordered {
		positionByID[t.ID] = i
	}

	chunks := splitIterations(p.cfg.Iterations, p.cfg.Workers)
	pool, err := ants.NewPool(len(chunks))
	if err != nil {
		return nil, errors.Wrap(err, "create rollout worker pool")
	}
	defer pool.Release()

	counts := make([][]int, len(chunks))
	var wg sync.WaitGroup
	for i, size := range chunks {
		if err := ctx.Err(); err != nil {
			break
		}

		chunk, iterations := i, size
		rng := p.streamFor(chunk)
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			counts[chunk] = runChunk(ctx, iterations, rng, ordered, positionByID, played, pending)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, errors.Wrap(err, "submit rollout chunk")
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wins := make([]int, len(ordered))
	for _, chunk := range counts {
		for i, n := range chunk {
			wins[i] += n
		}
	}
	return wins, nil
}

// streamFor gives every chunk its own random stream.
func (p *Predictor) streamFor(chunk int) *rand.Rand {
	if p.cfg.Seed != nil {
		return rand.New(rand.NewPCG(uint64(*p.cfg.Seed), uint64(chunk)))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func runChunk(
	ctx context.Context,
	iterations int,
	rng *rand.Rand,
	ordered []team.Team,
	positionByID map[int64]int,
	played []leaguestanding.Result,
	pending []pendingMatch,
) []int {
	counts := make([]int, len(ordered))
	results := make([]leaguestanding.Result, len(played)+len(pending))
	copy(results, played)

	for n := 0; n < iterations; n++ {
		if n%cancelCheckEvery == 0 && ctx.Err() != nil {
			return counts
		}
		for j, m := range pending {
			results[len(played)+j] = leaguestanding.Result{
				HomeTeamID: m.homeTeamID,
				AwayTeamID: m.awayTeamID,
				HomeScore:  simulation.SampleGoals(m.homeXG, rng),
				AwayScore:  simulation.SampleGoals(m.awayXG, rng),
			}
		}
		table := leaguestanding.ComputeTableFromResults(ordered, results)
		counts[positionByID[table[0].TeamID]]++
	}
	return counts
}

func splitIterations(iterations, workers int) []int {
	workers = max(1, min(workers, iterations))
	out := make([]int, workers)
	for i := range out {
		out[i] = iterations / workers
		if i < iterations%workers {
			out[i]++
		}
	}
	return out
}

// buildPredictions rounds to one decimal and hands any rounding residual to the
// first team (in name order) holding the highest probability, so the published
// values add up to 100.
func buildPredictions(ordered []team.Team, probabilities map[int64]float64) []TeamPrediction {
	out := make([]TeamPrediction, 0, len(ordered))
	highest := -1
	for i, t := range ordered {
		value := roundTenth(probabilities[t.ID])
		out = append(out, TeamPrediction{
			TeamID:      t.ID,
			TeamName:    t.Name,
			ShortName:   t.ShortName,
			Probability: value,
		})
		if highest < 0 || value > out[highest].Probability {
			highest = i
		}
	}

	sum := 0.0
	for _, item := range out {
		sum += item.Probability
	}
	if diff := roundTenth(100 - sum); highest >= 0 && diff != 0 {
		out[highest].Probability = roundTenth(min(100, max(0, out[highest].Probability+diff)))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Probability != out[j].Probability {
			return out[i].Probability > out[j].Probability
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
