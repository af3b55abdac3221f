package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/simulation"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
)

const (
	MinScore = 0
	MaxScore = 20
)

type SimulationService struct {
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	simulator   *simulation.Simulator
	logger      *logging.Logger
}

func NewSimulationService(
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	simulator *simulation.Simulator,
	logger *logging.Logger,
) *SimulationService {
	if simulator == nil {
		simulator = simulation.NewSimulator()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &SimulationService{
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		simulator:   simulator,
		logger:      logger,
	}
}

// PlayNextWeek simulates the earliest week that still has unplayed matches.
// played is false when the season is already complete.
func (s *SimulationService) PlayNextWeek(ctx context.Context) (fixture.Fixture, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.PlayNextWeek")
	defer span.End()

	snapshot, err := loadSnapshot(ctx, s.teamRepo, s.fixtureRepo)
	if err != nil {
		return fixture.Fixture{}, false, err
	}

	next, ok := snapshot.nextUnplayed()
	if !ok {
		return fixture.Fixture{}, false, nil
	}

	lookup := snapshot.lookup()
	updated, err := s.fixtureRepo.UpdateFixture(ctx, next.ID, func(item *fixture.Fixture) error {
		played, err := s.simulator.SimulateWeek(*item, lookup)
		if err != nil {
			return err
		}
		*item = played
		return nil
	})
	if err != nil {
		return fixture.Fixture{}, false, mapFixtureError(err, "play week")
	}

	s.logger.InfoContext(ctx, "week simulated", "week", updated.Week, "fixture_id", updated.ID)
	return updated, true, nil
}

// PlayAll simulates every remaining match and returns the whole schedule.
func (s *SimulationService) PlayAll(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.PlayAll")
	defer span.End()

	snapshot, err := loadSnapshot(ctx, s.teamRepo, s.fixtureRepo)
	if err != nil {
		return nil, err
	}

	simulated, err := s.simulator.SimulateAllRemaining(snapshot.fixtures, snapshot.lookup())
	if err != nil {
		return nil, mapFixtureError(err, "simulate remaining weeks")
	}

	playedBefore := make(map[int64]bool, len(snapshot.fixtures))
	for _, item := range snapshot.fixtures {
		playedBefore[item.ID] = item.IsPlayed
	}

	weeks := 0
	for _, item := range simulated {
		if playedBefore[item.ID] {
			continue
		}
		if _, err := s.fixtureRepo.UpdateFixture(ctx, item.ID, applySimulated(item)); err != nil {
			return nil, mapFixtureError(err, "store simulated week")
		}
		weeks++
	}

	items, err := s.fixtureRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	s.logger.InfoContext(ctx, "season simulated", "weeks_played", weeks)
	return items, nil
}

// applySimulated copies simulated scores onto matches that are still unplayed in
// storage, so a result recorded in the meantime wins.
func applySimulated(simulated fixture.Fixture) func(*fixture.Fixture) error {
	return func(item *fixture.Fixture) error {
		for _, m := range simulated.Matches {
			idx := item.MatchIndex(m.ID)
			if idx < 0 || item.Matches[idx].IsPlayed || !m.IsPlayed {
				continue
			}
			item.Matches[idx].RecordScore(*m.HomeScore, *m.AwayScore)
		}
		item.RefreshPlayed()
		return nil
	}
}

// UpdateMatchResult records a manual score for one match and refreshes the
// fixture's played flag.
func (s *SimulationService) UpdateMatchResult(ctx context.Context, matchID int64, homeScore, awayScore int) (fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.UpdateMatchResult")
	defer span.End()

	if matchID <= 0 {
		return fixture.Match{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}
	if !validScore(homeScore) || !validScore(awayScore) {
		return fixture.Match{}, fmt.Errorf("%w: scores must be within %d..%d, got %d-%d",
			ErrValidation, MinScore, MaxScore, homeScore, awayScore)
	}

	fixtureID, exists, err := s.fixtureRepo.FindFixtureIDByMatch(ctx, matchID)
	if err != nil {
		return fixture.Match{}, fmt.Errorf("find fixture by match: %w", err)
	}
	if !exists {
		return fixture.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	updated, err := s.fixtureRepo.UpdateFixture(ctx, fixtureID, func(item *fixture.Fixture) error {
		idx := item.MatchIndex(matchID)
		if idx < 0 {
			return fixture.ErrMatchNotFound
		}
		item.Matches[idx].RecordScore(homeScore, awayScore)
		item.RefreshPlayed()
		return nil
	})
	if err != nil {
		return fixture.Match{}, mapFixtureError(err, "update match result")
	}

	match := updated.Matches[updated.MatchIndex(matchID)]
	s.logger.InfoContext(ctx, "match result updated",
		"match_id", matchID,
		"fixture_id", fixtureID,
		"result", match.Result(),
	)
	return match, nil
}

// Reset clears every result while keeping the schedule.
func (s *SimulationService) Reset(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.Reset")
	defer span.End()

	if err := s.fixtureRepo.ResetResults(ctx); err != nil {
		return fmt.Errorf("reset results: %w", err)
	}

	s.logger.InfoContext(ctx, "simulation reset")
	return nil
}

func validScore(v int) bool {
	return v >= MinScore && v <= MaxScore
}

func mapFixtureError(err error, op string) error {
	switch {
	case errors.Is(err, fixture.ErrFixtureNotFound), errors.Is(err, fixture.ErrMatchNotFound):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
	case errors.Is(err, simulation.ErrUnknownTeam), errors.Is(err, team.ErrInvalidTeam):
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
