package shift

import (
	"github.com/turnolab/turnos-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	StartTime2 string `json:"start_time_2"`
	EndTime2   string `json:"end_time_2"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}
	// Second block is optional but must be complete when present
	if (r.StartTime2 != "") != (r.EndTime2 != "") {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time_2",
			Message: "second block requires both start_time_2 and end_time_2",
		})
	}
	if r.StartTime2 != "" && !validator.IsValidClockTime(r.StartTime2) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time_2",
			Message: "start_time_2 must be a valid HH:MM time",
		})
	}
	if r.EndTime2 != "" && !validator.IsValidClockTime(r.EndTime2) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time_2",
			Message: "end_time_2 must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name"`
	Color      *string `json:"color"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	StartTime2 *string `json:"start_time_2"`
	EndTime2   *string `json:"end_time_2"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	for field, value := range map[string]*string{
		"start_time":   r.StartTime,
		"end_time":     r.EndTime,
		"start_time_2": r.StartTime2,
		"end_time_2":   r.EndTime2,
	} {
		if value != nil && *value != "" && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid HH:MM time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateHalfShiftRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *CreateHalfShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateHalfShiftRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type ShiftResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Color           string `json:"color"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	StartTime2      string `json:"start_time_2,omitempty"`
	EndTime2        string `json:"end_time_2,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func ToShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:              s.ID,
		Name:            s.Name,
		Color:           s.Color,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		StartTime2:      s.StartTime2,
		EndTime2:        s.EndTime2,
		DurationMinutes: s.DurationMinutes(),
		CreatedAt:       s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

type HalfShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func ToHalfShiftResponse(h HalfShift) HalfShiftResponse {
	return HalfShiftResponse{
		ID:        h.ID,
		Name:      h.Name,
		StartTime: h.StartTime,
		EndTime:   h.EndTime,
		CreatedAt: h.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: h.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
