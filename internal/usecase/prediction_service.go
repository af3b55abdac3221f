package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/prediction"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
)

// PredictionCache stores finished predictions keyed by league state.
type PredictionCache interface {
	Get(ctx context.Context, key string) ([]prediction.TeamPrediction, bool, error)
	Set(ctx context.Context, key string, items []prediction.TeamPrediction) error
}

type PredictionService struct {
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	predictor   *prediction.Predictor
	cache       PredictionCache
	logger      *logging.Logger
}

func NewPredictionService(
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	predictor *prediction.Predictor,
	cache PredictionCache,
	logger *logging.Logger,
) *PredictionService {
	if predictor == nil {
		predictor = prediction.NewPredictor(prediction.Config{})
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &PredictionService{
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		predictor:   predictor,
		cache:       cache,
		logger:      logger,
	}
}

// Predict returns title chances. ok is false until enough weeks are played.
func (s *PredictionService) Predict(ctx context.Context) ([]prediction.TeamPrediction, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Predict")
	defer span.End()

	snapshot, err := loadSnapshot(ctx, s.teamRepo, s.fixtureRepo)
	if err != nil {
		return nil, false, err
	}

	return s.predict(ctx, snapshot)
}

func (s *PredictionService) predict(ctx context.Context, snapshot leagueSnapshot) ([]prediction.TeamPrediction, bool, error) {
	if !s.predictor.Ready(snapshot.fixtures) {
		return nil, false, nil
	}

	key := predictionKey(snapshot, s.predictor.Iterations())
	if s.cache != nil {
		items, hit, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "prediction cache read failed", "key", key, "error", err)
		case hit:
			return items, true, nil
		}
	}

	items, ok, err := s.predictor.Predict(ctx, snapshot.teams, snapshot.fixtures)
	if err != nil {
		return nil, false, mapFixtureError(err, "predict championship")
	}
	if !ok {
		return nil, false, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, items); err != nil {
			s.logger.WarnContext(ctx, "prediction cache write failed", "key", key, "error", err)
		}
	}

	return items, true, nil
}

// predictionKey changes whenever any team, match result or the iteration count changes.
func predictionKey(snapshot leagueSnapshot, iterations int) string {
	h := fnv.New64a()
	write := func(parts ...string) {
		for _, part := range parts {
			_, _ = h.Write([]byte(part))
			_, _ = h.Write([]byte{'|'})
		}
	}

	write("iterations", strconv.Itoa(iterations))
	for _, t := range snapshot.teams {
		write("team",
			strconv.FormatInt(t.ID, 10),
			t.Name,
			strconv.Itoa(t.Power),
			strconv.Itoa(t.HomeAdvantage),
			strconv.Itoa(t.GoalkeeperFactor),
			strconv.Itoa(t.SupporterStrength),
		)
	}
	for _, m := range fixture.AllMatches(snapshot.fixtures) {
		write("match",
			strconv.FormatInt(m.ID, 10),
			strconv.FormatInt(m.HomeTeamID, 10),
			strconv.FormatInt(m.AwayTeamID, 10),
			m.Result(),
		)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
