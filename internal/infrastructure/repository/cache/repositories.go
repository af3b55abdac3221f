package cache

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	basecache "github.com/riskibarqy/league-simulator/internal/platform/cache"
)

const (
	teamKeyPrefix    = "team:"
	fixtureKeyPrefix = "fixture:"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamKeyPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := teamKeyPrefix + "id:" + strconv.FormatInt(teamID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

// FixtureRepository caches reads and drops every fixture key on any write.
// Keys carry a generation so a load that races a write is never served.
type FixtureRepository struct {
	next       fixture.Repository
	cache      *basecache.Store
	generation atomic.Uint64
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store) *FixtureRepository {
	return &FixtureRepository{next: next, cache: cache}
}

func (r *FixtureRepository) List(ctx context.Context) ([]fixture.Fixture, error) {
	v, err := r.cache.GetOrLoad(ctx, r.key("list"), func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return fixture.CloneAll(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]fixture.Fixture)
	return fixture.CloneAll(items), nil
}

func (r *FixtureRepository) FindFixtureIDByMatch(ctx context.Context, matchID int64) (int64, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, r.key("match:"+strconv.FormatInt(matchID, 10)), func(ctx context.Context) (any, error) {
		fixtureID, exists, err := r.next.FindFixtureIDByMatch(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedFixtureByMatch{fixtureID: fixtureID, exists: exists}, nil
	})
	if err != nil {
		return 0, false, err
	}

	cached, _ := v.(cachedFixtureByMatch)
	return cached.fixtureID, cached.exists, nil
}

type cachedFixtureByMatch struct {
	fixtureID int64
	exists    bool
}

func (r *FixtureRepository) ReplaceSchedule(ctx context.Context, fixtures []fixture.Fixture) ([]fixture.Fixture, error) {
	defer r.invalidate(ctx)
	return r.next.ReplaceSchedule(ctx, fixtures)
}

func (r *FixtureRepository) UpdateFixture(ctx context.Context, fixtureID int64, mutate func(*fixture.Fixture) error) (fixture.Fixture, error) {
	defer r.invalidate(ctx)
	return r.next.UpdateFixture(ctx, fixtureID, mutate)
}

func (r *FixtureRepository) ResetResults(ctx context.Context) error {
	defer r.invalidate(ctx)
	return r.next.ResetResults(ctx)
}

func (r *FixtureRepository) key(suffix string) string {
	return fixtureKeyPrefix + strconv.FormatUint(r.generation.Load(), 10) + ":" + suffix
}

func (r *FixtureRepository) invalidate(ctx context.Context) {
	r.generation.Add(1)
	r.cache.DeletePrefix(ctx, fixtureKeyPrefix)
}
