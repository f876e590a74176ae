package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/settings"
	"github.com/turnolab/turnos-backend-go/internal/domain/shift"
	"github.com/turnolab/turnos-backend-go/internal/handler/http/response"
)

// MasterHandler serves the master data behind the schedule grid: the
// shift catalog, half-shift templates, and the hour-computation settings.
type MasterHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	CreateHalfShift(w http.ResponseWriter, r *http.Request)
	ListHalfShifts(w http.ResponseWriter, r *http.Request)
	UpdateHalfShift(w http.ResponseWriter, r *http.Request)
	DeleteHalfShift(w http.ResponseWriter, r *http.Request)

	GetScheduleConfig(w http.ResponseWriter, r *http.Request)
	UpdateScheduleConfig(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	shiftService    shift.ShiftService
	settingsService settings.SettingsService
}

func NewMasterHandler(shiftService shift.ShiftService, settingsService settings.SettingsService) MasterHandler {
	return &MasterHandlerImpl{
		shiftService:    shiftService,
		settingsService: settingsService,
	}
}

// CreateShift implements MasterHandler.
func (h *MasterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.CreateShift(r.Context(), req)
	if err != nil {
		slog.Error("Create shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", created)
}

// ListShifts implements MasterHandler.
func (h *MasterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ListShifts(r.Context())
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// UpdateShift implements MasterHandler.
func (h *MasterHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.shiftService.UpdateShift(r.Context(), req)
	if err != nil {
		slog.Error("Update shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// DeleteShift implements MasterHandler.
func (h *MasterHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// CreateHalfShift implements MasterHandler.
func (h *MasterHandlerImpl) CreateHalfShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateHalfShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create half shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.CreateHalfShift(r.Context(), req)
	if err != nil {
		slog.Error("Create half shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Half shift created successfully", created)
}

// ListHalfShifts implements MasterHandler.
func (h *MasterHandlerImpl) ListHalfShifts(w http.ResponseWriter, r *http.Request) {
	halfShifts, err := h.shiftService.ListHalfShifts(r.Context())
	if err != nil {
		slog.Error("List half shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, halfShifts)
}

// UpdateHalfShift implements MasterHandler.
func (h *MasterHandlerImpl) UpdateHalfShift(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateHalfShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update half shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.shiftService.UpdateHalfShift(r.Context(), req)
	if err != nil {
		slog.Error("Update half shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// DeleteHalfShift implements MasterHandler.
func (h *MasterHandlerImpl) DeleteHalfShift(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteHalfShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete half shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Half shift deleted successfully", nil)
}

// GetScheduleConfig implements MasterHandler.
func (h *MasterHandlerImpl) GetScheduleConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.settingsService.GetScheduleConfig(r.Context())
	if err != nil {
		slog.Error("Get schedule config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, config)
}

// UpdateScheduleConfig implements MasterHandler.
func (h *MasterHandlerImpl) UpdateScheduleConfig(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateScheduleConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update schedule config decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.settingsService.UpdateScheduleConfig(r.Context(), req)
	if err != nil {
		slog.Error("Update schedule config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}
