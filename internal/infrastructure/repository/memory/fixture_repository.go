package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
)

// FixtureRepository keeps the schedule in process. Every read hands out deep
// copies so callers never share score pointers with the store.
type FixtureRepository struct {
	mu            sync.RWMutex
	fixtures      []fixture.Fixture
	nextFixtureID int64
	nextMatchID   int64
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{}
}

func (r *FixtureRepository) List(_ context.Context) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return fixture.CloneAll(r.fixtures), nil
}

func (r *FixtureRepository) FindFixtureIDByMatch(_ context.Context, matchID int64) (int64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.fixtures {
		if item.MatchIndex(matchID) >= 0 {
			return item.ID, true, nil
		}
	}

	return 0, false, nil
}

func (r *FixtureRepository) ReplaceSchedule(_ context.Context, fixtures []fixture.Fixture) ([]fixture.Fixture, error) {
	items := fixture.CloneAll(fixtures)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Week < items[j].Week
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range items {
		r.nextFixtureID++
		items[i].ID = r.nextFixtureID
		for j := range items[i].Matches {
			r.nextMatchID++
			items[i].Matches[j].ID = r.nextMatchID
			items[i].Matches[j].FixtureID = items[i].ID
		}
		items[i].RefreshPlayed()
	}
	r.fixtures = items

	return fixture.CloneAll(items), nil
}

func (r *FixtureRepository) UpdateFixture(_ context.Context, fixtureID int64, mutate func(*fixture.Fixture) error) (fixture.Fixture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.fixtures {
		if r.fixtures[i].ID != fixtureID {
			continue
		}

		working := r.fixtures[i].Clone()
		if err := mutate(&working); err != nil {
			return fixture.Fixture{}, err
		}
		working.ID = fixtureID
		r.fixtures[i] = working

		return working.Clone(), nil
	}

	return fixture.Fixture{}, errors.Wrapf(fixture.ErrFixtureNotFound, "fixture=%d", fixtureID)
}

func (r *FixtureRepository) ResetResults(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.fixtures {
		r.fixtures[i].ClearResults()
	}

	return nil
}
