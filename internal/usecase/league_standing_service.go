package usecase

import (
	"context"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

type LeagueStandingService struct {
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
}

func NewLeagueStandingService(teamRepo team.Repository, fixtureRepo fixture.Repository) *LeagueStandingService {
	return &LeagueStandingService{
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
	}
}

// Table ranks every team from the played matches.
func (s *LeagueStandingService) Table(ctx context.Context) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStandingService.Table")
	defer span.End()

	snapshot, err := loadSnapshot(ctx, s.teamRepo, s.fixtureRepo)
	if err != nil {
		return nil, err
	}

	return leaguestanding.ComputeTable(snapshot.teams, fixture.AllMatches(snapshot.fixtures)), nil
}
