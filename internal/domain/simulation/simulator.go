package simulation

import (
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

// Simulator fills in match scores. It is safe for concurrent use.
//
// With a fixed seed the random stream is reset to that seed right before every
// match, so the same match context always yields the same score.
type Simulator struct {
	mu   sync.Mutex
	seed *int64
	pcg  *rand.PCG
	rng  *rand.Rand
}

type Option func(*Simulator)

func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.seed = &seed
	}
}

// WithSource replaces the random source used by an unseeded simulator.
func WithSource(src rand.Source) Option {
	return func(s *Simulator) {
		if src != nil {
			s.rng = rand.New(src)
		}
	}
}

func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{}
	for _, opt := range opts {
		opt(s)
	}

	if s.seed != nil {
		s.pcg = rand.NewPCG(uint64(*s.seed), 0)
		s.rng = rand.New(s.pcg)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return s
}

func (s *Simulator) Seeded() bool {
	return s.seed != nil
}

// SimulateMatch returns m with both scores drawn. Played matches are returned unchanged.
func (s *Simulator) SimulateMatch(m fixture.Match, teams team.Lookup) (fixture.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.simulateMatch(m, teams)
}

func (s *Simulator) simulateMatch(m fixture.Match, teams team.Lookup) (fixture.Match, error) {
	if m.IsPlayed {
		return m, nil
	}

	home, ok := teams[m.HomeTeamID]
	if !ok {
		return m, errors.Wrapf(ErrUnknownTeam, "match=%d home team=%d", m.ID, m.HomeTeamID)
	}
	away, ok := teams[m.AwayTeamID]
	if !ok {
		return m, errors.Wrapf(ErrUnknownTeam, "match=%d away team=%d", m.ID, m.AwayTeamID)
	}

	if s.seed != nil {
		s.pcg.Seed(uint64(*s.seed), 0)
	}

	homeXG := ExpectedGoals(home, true, away)
	awayXG := ExpectedGoals(away, false, home)

	// home is drawn before away
	homeGoals := SampleGoals(homeXG, s.rng)
	awayGoals := SampleGoals(awayXG, s.rng)
	m.RecordScore(homeGoals, awayGoals)

	return m, nil
}

// SimulateWeek plays the still-unplayed matches of f and refreshes its played flag.
// Recorded results are kept. On error f is returned unchanged.
func (s *Simulator) SimulateWeek(f fixture.Fixture, teams team.Lookup) (fixture.Fixture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.simulateWeek(f, teams)
}

func (s *Simulator) simulateWeek(f fixture.Fixture, teams team.Lookup) (fixture.Fixture, error) {
	if f.IsPlayed {
		return f, nil
	}

	out := f.Clone()
	for i := range out.Matches {
		if out.Matches[i].IsPlayed {
			continue
		}
		played, err := s.simulateMatch(out.Matches[i], teams)
		if err != nil {
			return f, errors.Wrapf(err, "simulate week %d", f.Week)
		}
		out.Matches[i] = played
	}
	out.RefreshPlayed()

	return out, nil
}

// SimulateAllRemaining plays every unplayed fixture in ascending week order and
// returns the whole schedule ordered by week.
func (s *Simulator) SimulateAllRemaining(fixtures []fixture.Fixture, teams team.Lookup) ([]fixture.Fixture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := fixture.CloneAll(fixtures)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Week < out[j].Week
	})

	for i := range out {
		if out[i].IsPlayed {
			continue
		}
		played, err := s.simulateWeek(out[i], teams)
		if err != nil {
			return nil, err
		}
		out[i] = played
	}

	return out, nil
}

// ResetAllResults clears every score and played flag without dropping fixtures or matches.
func (s *Simulator) ResetAllResults(fixtures []fixture.Fixture) []fixture.Fixture {
	out := fixture.CloneAll(fixtures)
	for i := range out {
		out[i].ClearResults()
	}
	return out
}
