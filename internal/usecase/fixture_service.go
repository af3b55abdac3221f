package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
)

type FixtureService struct {
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	logger      *logging.Logger
}

func NewFixtureService(teamRepo team.Repository, fixtureRepo fixture.Repository, logger *logging.Logger) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureService{
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		logger:      logger,
	}
}

// Generate replaces the whole schedule (and every recorded result) with a fresh
// double round-robin.
func (s *FixtureService) Generate(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Generate")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	rounds, err := fixture.GenerateRoundRobin(teams)
	if err != nil {
		if errors.Is(err, fixture.ErrInvalidTeamCount) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("generate round robin: %w", err)
	}

	stored, err := s.fixtureRepo.ReplaceSchedule(ctx, fixture.BuildSchedule(rounds))
	if err != nil {
		return nil, mapFixtureError(err, "replace schedule")
	}

	s.logger.InfoContext(ctx, "fixtures generated",
		"weeks", len(stored),
		"teams", len(teams),
	)
	return stored, nil
}

func (s *FixtureService) List(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.List")
	defer span.End()

	items, err := s.fixtureRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	if items == nil {
		items = []fixture.Fixture{}
	}

	return items, nil
}
