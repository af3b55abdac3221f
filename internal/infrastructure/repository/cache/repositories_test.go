package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/infrastructure/repository/memory"
	fixturemock "github.com/riskibarqy/league-simulator/internal/mocks/domain/fixture"
	teammock "github.com/riskibarqy/league-simulator/internal/mocks/domain/team"
	basecache "github.com/riskibarqy/league-simulator/internal/platform/cache"
)

func TestTeamRepository_ListIsCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewRepository(t)
	next.On("List", ctx).Return(memory.SeedTeams(), nil).Once()
	next.On("GetByID", ctx, int64(9)).Return(memory.SeedTeams()[0], false, nil).Once()

	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))
	for i := 0; i < 3; i++ {
		items, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list teams: %v", err)
		}
		if len(items) != 4 {
			t.Fatalf("unexpected team count: %d", len(items))
		}
		items[0].Name = "mutated"
	}

	items, _ := repo.List(ctx)
	if items[0].Name != "Real Madrid" {
		t.Fatalf("cached slice was shared with caller: %s", items[0].Name)
	}

	for i := 0; i < 2; i++ {
		if _, ok, err := repo.GetByID(ctx, 9); err != nil || ok {
			t.Fatalf("expected cached miss, got ok=%v err=%v", ok, err)
		}
	}
}

func TestFixtureRepository_WritesInvalidateReads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := memory.NewFixtureRepository()
	repo := NewFixtureRepository(next, basecache.NewStore(time.Minute))

	rounds, err := fixture.GenerateRoundRobin(memory.SeedTeams())
	if err != nil {
		t.Fatalf("generate round robin: %v", err)
	}
	stored, err := repo.ReplaceSchedule(ctx, fixture.BuildSchedule(rounds))
	if err != nil {
		t.Fatalf("replace schedule: %v", err)
	}

	before, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if before[0].IsPlayed {
		t.Fatalf("fresh schedule should be unplayed")
	}

	if _, err := repo.UpdateFixture(ctx, stored[0].ID, func(f *fixture.Fixture) error {
		for i := range f.Matches {
			f.Matches[i].RecordScore(1, 1)
		}
		f.RefreshPlayed()
		return nil
	}); err != nil {
		t.Fatalf("update fixture: %v", err)
	}

	after, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if !after[0].IsPlayed {
		t.Fatalf("update was hidden by a stale cache entry")
	}

	if err := repo.ResetResults(ctx); err != nil {
		t.Fatalf("reset results: %v", err)
	}
	reset, _ := repo.List(ctx)
	if reset[0].IsPlayed {
		t.Fatalf("reset was hidden by a stale cache entry")
	}
}

func TestFixtureRepository_FindFixtureIDByMatchIsCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := fixturemock.NewRepository(t)
	next.On("FindFixtureIDByMatch", ctx, int64(3)).Return(int64(2), true, nil).Once()
	next.On("ResetResults", ctx).Return(nil).Once()
	next.On("FindFixtureIDByMatch", ctx, int64(3)).Return(int64(2), true, nil).Once()

	repo := NewFixtureRepository(next, basecache.NewStore(time.Minute))
	for i := 0; i < 2; i++ {
		fixtureID, ok, err := repo.FindFixtureIDByMatch(ctx, 3)
		if err != nil || !ok || fixtureID != 2 {
			t.Fatalf("unexpected lookup: id=%d ok=%v err=%v", fixtureID, ok, err)
		}
	}

	if err := repo.ResetResults(ctx); err != nil {
		t.Fatalf("reset results: %v", err)
	}
	if _, _, err := repo.FindFixtureIDByMatch(ctx, 3); err != nil {
		t.Fatalf("lookup after invalidation: %v", err)
	}
	next.AssertNumberOfCalls(t, "FindFixtureIDByMatch", 2)
}
