package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/usecase"
)

func (h *Handler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSimulation")
	defer span.End()

	dashboard, err := h.dashboardService.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get simulation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}

func (h *Handler) PlayNextWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayNextWeek")
	defer span.End()

	played, ok, err := h.simulationService.PlayNextWeek(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "play next week failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeSuccess(ctx, w, http.StatusOK, playWeekDTO{Played: false})
		return
	}

	teams, err := h.teamService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item := fixtureToDTO(played, team.NewLookup(teams))
	writeSuccess(ctx, w, http.StatusOK, playWeekDTO{Played: true, Fixture: &item})
}

func (h *Handler) PlayAllWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayAllWeeks")
	defer span.End()

	fixtures, err := h.simulationService.PlayAll(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "play all weeks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(fixtures, team.NewLookup(teams)))
}

func (h *Handler) UpdateMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchResult")
	defer span.End()

	matchID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("matchID")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid match id %q", usecase.ErrInvalidInput, r.PathValue("matchID")))
		return
	}

	var req updateMatchResultRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.simulationService.UpdateMatchResult(ctx, matchID, *req.HomeScore, *req.AwayScore)
	if err != nil {
		h.logger.WarnContext(ctx, "update match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated, team.NewLookup(teams)))
}

func (h *Handler) ResetSimulation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetSimulation")
	defer span.End()

	if err := h.simulationService.Reset(ctx); err != nil {
		h.logger.WarnContext(ctx, "reset simulation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "reset"})
}
