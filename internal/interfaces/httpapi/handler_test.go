package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-simulator/internal/domain/prediction"
	"github.com/riskibarqy/league-simulator/internal/domain/simulation"
	"github.com/riskibarqy/league-simulator/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
	"github.com/riskibarqy/league-simulator/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	APIVersion string `json:"apiVersion"`
	Data       T      `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	fixtureRepo := memory.NewFixtureRepository()
	seed := int64(2024)

	predictions := usecase.NewPredictionService(teamRepo, fixtureRepo,
		prediction.NewPredictor(prediction.Config{Iterations: 200, Workers: 2, Seed: &seed}), nil, logger)
	handler := NewHandler(
		usecase.NewTeamService(teamRepo),
		usecase.NewFixtureService(teamRepo, fixtureRepo, logger),
		usecase.NewSimulationService(teamRepo, fixtureRepo, simulation.NewSimulator(simulation.WithSeed(seed)), logger),
		usecase.NewLeagueStandingService(teamRepo, fixtureRepo),
		predictions,
		usecase.NewDashboardService(teamRepo, fixtureRepo, predictions),
		logger,
	)
	return NewRouter(handler, logger, []string{"*"})
}

func do[T any](t *testing.T, router http.Handler, method, path, body string) (int, envelope[T]) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return rec.Code, out
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	code, body := do[map[string]string](t, newTestRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Data["status"])
}

func TestHandler_ListTeamsOrderedByPower(t *testing.T) {
	t.Parallel()

	code, body := do[[]teamDTO](t, newTestRouter(t), http.MethodGet, "/v1/teams", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data, 4)
	assert.Equal(t, "Real Madrid", body.Data[0].Name)
	assert.Equal(t, "Galatasaray", body.Data[3].Name)
}

func TestHandler_SimulationBeforeFixtures(t *testing.T) {
	t.Parallel()

	code, body := do[simulationDTO](t, newTestRouter(t), http.MethodGet, "/v1/simulation", "")
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Status)
}

func TestHandler_SeasonFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	code, fixtures := do[[]fixtureDTO](t, router, http.MethodPost, "/v1/fixtures/generate", "")
	require.Equal(t, http.StatusCreated, code)
	require.Len(t, fixtures.Data, 6)
	first := fixtures.Data[0].Matches[0]
	assert.Equal(t, "vs", first.Result)
	assert.NotEmpty(t, first.HomeTeamName)

	code, preds := do[predictionsDTO](t, router, http.MethodGet, "/v1/predictions", "")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, preds.Data.Available)
	assert.Empty(t, preds.Data.Predictions)

	for week := 1; week <= 4; week++ {
		code, played := do[playWeekDTO](t, router, http.MethodPost, "/v1/simulation/play-week", "")
		require.Equal(t, http.StatusOK, code)
		require.True(t, played.Data.Played)
		require.Equal(t, week, played.Data.Fixture.Week)
	}

	code, preds = do[predictionsDTO](t, router, http.MethodGet, "/v1/predictions", "")
	require.Equal(t, http.StatusOK, code)
	require.True(t, preds.Data.Available)
	require.Len(t, preds.Data.Predictions, 4)
	total := 0.0
	for _, p := range preds.Data.Predictions {
		total += p.Probability
	}
	assert.InDelta(t, 100.0, total, 0.05)

	code, all := do[[]fixtureDTO](t, router, http.MethodPost, "/v1/simulation/play-all", "")
	require.Equal(t, http.StatusOK, code)
	for _, f := range all.Data {
		assert.True(t, f.IsPlayed, "week %d", f.Week)
	}

	code, again := do[playWeekDTO](t, router, http.MethodPost, "/v1/simulation/play-week", "")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, again.Data.Played)

	code, dash := do[simulationDTO](t, router, http.MethodGet, "/v1/simulation", "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, dash.Data.AllWeeksPlayed)
	assert.Equal(t, 6, dash.Data.CurrentWeek)
	require.Len(t, dash.Data.Predictions, 4)
	assert.Equal(t, 100.0, dash.Data.Predictions[0].Probability)
	assert.Equal(t, dash.Data.Standings[0].TeamID, dash.Data.Predictions[0].TeamID)

	code, table := do[[]standingDTO](t, router, http.MethodGet, "/v1/standings", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, table.Data, 4)
	for i, row := range table.Data {
		assert.Equal(t, i+1, row.Position)
		assert.Equal(t, 6, row.Played)
	}

	code, _ = do[map[string]string](t, router, http.MethodPost, "/v1/simulation/reset", "")
	require.Equal(t, http.StatusOK, code)

	code, reset := do[[]fixtureDTO](t, router, http.MethodGet, "/v1/fixtures", "")
	require.Equal(t, http.StatusOK, code)
	for _, f := range reset.Data {
		assert.False(t, f.IsPlayed)
	}
}

func TestHandler_UpdateMatchResult(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	code, fixtures := do[[]fixtureDTO](t, router, http.MethodPost, "/v1/fixtures/generate", "")
	require.Equal(t, http.StatusCreated, code)
	matchID := fixtures.Data[0].Matches[1].ID
	path := "/v1/simulation/matches/" + strconv.FormatInt(matchID, 10)

	code, updated := do[matchDTO](t, router, http.MethodPut, path, `{"home_score":3,"away_score":1}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "3 - 1", updated.Data.Result)
	assert.True(t, updated.Data.IsPlayed)

	cases := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{name: "score above range", path: path, body: `{"home_score":21,"away_score":1}`, status: http.StatusUnprocessableEntity},
		{name: "negative score", path: path, body: `{"home_score":1,"away_score":-1}`, status: http.StatusUnprocessableEntity},
		{name: "missing score", path: path, body: `{"home_score":1}`, status: http.StatusUnprocessableEntity},
		{name: "unknown field", path: path, body: `{"home_score":1,"away_score":1,"x":1}`, status: http.StatusBadRequest},
		{name: "broken json", path: path, body: `{`, status: http.StatusBadRequest},
		{name: "bad id", path: "/v1/simulation/matches/abc", body: `{"home_score":1,"away_score":1}`, status: http.StatusBadRequest},
		{name: "unknown match", path: "/v1/simulation/matches/999", body: `{"home_score":1,"away_score":1}`, status: http.StatusNotFound},
	}
	for _, tc := range cases {
		code, body := do[matchDTO](t, router, http.MethodPut, tc.path, tc.body)
		assert.Equal(t, tc.status, code, tc.name)
		assert.NotNil(t, body.Error, tc.name)
	}

	code, list := do[[]fixtureDTO](t, router, http.MethodGet, "/v1/fixtures", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "3 - 1", list.Data[0].Matches[1].Result)
	assert.False(t, list.Data[0].IsPlayed, "only one of two matches is played")
}
