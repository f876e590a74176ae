package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/pattern"
	"github.com/turnolab/turnos-backend-go/internal/domain/stats"
	"github.com/turnolab/turnos-backend-go/internal/handler/http/response"
)

// StatsHandler exposes the hour/franco aggregates and the shift pattern
// suggestions. Everything here is read-only.
type StatsHandler interface {
	WeeklyStats(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
	Suggestions(w http.ResponseWriter, r *http.Request)
}

type StatsHandlerImpl struct {
	statsService   stats.StatsService
	patternService pattern.PatternService
}

func NewStatsHandler(statsService stats.StatsService, patternService pattern.PatternService) StatsHandler {
	return &StatsHandlerImpl{
		statsService:   statsService,
		patternService: patternService,
	}
}

// WeeklyStats implements StatsHandler.
func (h *StatsHandlerImpl) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	req := stats.WeeklyStatsRequest{WeekStart: chi.URLParam(r, "weekStart")}

	result, err := h.statsService.WeeklyStats(r.Context(), req)
	if err != nil {
		slog.Error("Weekly stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyStats implements StatsHandler.
func (h *StatsHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	result, err := h.statsService.MonthlyStats(r.Context(), stats.MonthlyStatsRequest{Year: year, Month: month})
	if err != nil {
		slog.Error("Monthly stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Suggestions implements StatsHandler. Suggestions are advisory; nothing
// is written to the schedule.
func (h *StatsHandlerImpl) Suggestions(w http.ResponseWriter, r *http.Request) {
	req := pattern.SuggestionsRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		WeekStart:  r.URL.Query().Get("week_start"),
	}

	result, err := h.patternService.SuggestWeek(r.Context(), req)
	if err != nil {
		slog.Error("Suggestions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
