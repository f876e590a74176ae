package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	SetAssignments(w http.ResponseWriter, r *http.Request)
	SetDayStatus(w http.ResponseWriter, r *http.Request)
	SetCompleted(w http.ResponseWriter, r *http.Request)

	BeginEditSession(w http.ResponseWriter, r *http.Request)
	Undo(w http.ResponseWriter, r *http.Request)
	Redo(w http.ResponseWriter, r *http.Request)
	EndEditSession(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// GetWeek implements ScheduleHandler. Reading a never-edited week returns
// an empty document rather than a 404.
func (h *ScheduleHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	req := schedule.GetWeekRequest{WeekStart: chi.URLParam(r, "weekStart")}

	week, err := h.scheduleService.GetOrCreateWeek(r.Context(), req)
	if err != nil {
		slog.Error("Get week service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// SetAssignments implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SetAssignments(w http.ResponseWriter, r *http.Request) {
	var req schedule.SetAssignmentsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set assignments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WeekStart = chi.URLParam(r, "weekStart")

	week, err := h.scheduleService.SetAssignments(r.Context(), req)
	if err != nil {
		slog.Error("Set assignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// SetDayStatus implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SetDayStatus(w http.ResponseWriter, r *http.Request) {
	var req schedule.SetDayStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set day status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WeekStart = chi.URLParam(r, "weekStart")

	week, err := h.scheduleService.SetDayStatus(r.Context(), req)
	if err != nil {
		slog.Error("Set day status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// SetCompleted implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SetCompleted(w http.ResponseWriter, r *http.Request) {
	var req schedule.SetCompletedRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set completed decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WeekStart = chi.URLParam(r, "weekStart")

	week, err := h.scheduleService.SetCompleted(r.Context(), req)
	if err != nil {
		slog.Error("Set completed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// BeginEditSession implements ScheduleHandler.
func (h *ScheduleHandlerImpl) BeginEditSession(w http.ResponseWriter, r *http.Request) {
	req := schedule.GetWeekRequest{WeekStart: chi.URLParam(r, "weekStart")}

	session, err := h.scheduleService.BeginEditSession(r.Context(), req)
	if err != nil {
		slog.Error("Begin edit session service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Edit session started", session)
}

// Undo implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Undo(w http.ResponseWriter, r *http.Request) {
	week, err := h.scheduleService.Undo(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		slog.Error("Undo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// Redo implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Redo(w http.ResponseWriter, r *http.Request) {
	week, err := h.scheduleService.Redo(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		slog.Error("Redo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// EndEditSession implements ScheduleHandler.
func (h *ScheduleHandlerImpl) EndEditSession(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.EndEditSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		slog.Error("End edit session service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Edit session ended", nil)
}
