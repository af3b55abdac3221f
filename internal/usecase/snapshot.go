package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

// leagueSnapshot is a read-only view of the league at one point in time.
type leagueSnapshot struct {
	teams    []team.Team
	fixtures []fixture.Fixture
}

func (s leagueSnapshot) lookup() team.Lookup {
	return team.NewLookup(s.teams)
}

// nextUnplayed returns the earliest fixture that still has an unplayed match.
func (s leagueSnapshot) nextUnplayed() (fixture.Fixture, bool) {
	for _, item := range s.fixtures {
		if !item.IsPlayed {
			return item, true
		}
	}
	return fixture.Fixture{}, false
}

func loadSnapshot(ctx context.Context, teamRepo team.Repository, fixtureRepo fixture.Repository) (leagueSnapshot, error) {
	var snapshot leagueSnapshot

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := teamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		snapshot.teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := fixtureRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list fixtures: %w", err)
		}
		snapshot.fixtures = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return leagueSnapshot{}, err
	}

	return snapshot, nil
}
