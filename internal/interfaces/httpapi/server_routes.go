package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/fixtures/generate", handler.GenerateFixtures)
	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/predictions", handler.GetPredictions)
}

func registerSimulationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/simulation", handler.GetSimulation)
	mux.HandleFunc("POST /v1/simulation/play-week", handler.PlayNextWeek)
	mux.HandleFunc("POST /v1/simulation/play-all", handler.PlayAllWeeks)
	mux.HandleFunc("PUT /v1/simulation/matches/{matchID}", handler.UpdateMatchResult)
	mux.HandleFunc("POST /v1/simulation/reset", handler.ResetSimulation)
}
