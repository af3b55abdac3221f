package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-simulator/internal/domain/prediction"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

// Dashboard is everything the simulation screen shows at once.
type Dashboard struct {
	Teams          []team.Team
	Fixtures       []fixture.Fixture
	Standings      []leaguestanding.Standing
	CurrentWeek    int
	Predictions    []prediction.TeamPrediction
	AllWeeksPlayed bool
}

type DashboardService struct {
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	predictions *PredictionService
}

func NewDashboardService(teamRepo team.Repository, fixtureRepo fixture.Repository, predictions *PredictionService) *DashboardService {
	return &DashboardService{
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		predictions: predictions,
	}
}

// Get fails with ErrNotFound until fixtures have been generated.
func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	snapshot, err := loadSnapshot(ctx, s.teamRepo, s.fixtureRepo)
	if err != nil {
		return Dashboard{}, err
	}
	if len(snapshot.fixtures) == 0 {
		return Dashboard{}, fmt.Errorf("%w: fixtures have not been generated", ErrNotFound)
	}

	var items []prediction.TeamPrediction
	if s.predictions != nil {
		items, _, err = s.predictions.predict(ctx, snapshot)
		if err != nil {
			return Dashboard{}, err
		}
	}

	return Dashboard{
		Teams:          snapshot.teams,
		Fixtures:       snapshot.fixtures,
		Standings:      leaguestanding.ComputeTable(snapshot.teams, fixture.AllMatches(snapshot.fixtures)),
		CurrentWeek:    fixture.MaxPlayedWeek(snapshot.fixtures),
		Predictions:    items,
		AllWeeksPlayed: fixture.AllPlayed(snapshot.fixtures),
	}, nil
}
