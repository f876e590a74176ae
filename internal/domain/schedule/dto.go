package schedule

import (
	"github.com/turnolab/turnos-backend-go/internal/pkg/validator"
)

type GetWeekRequest struct {
	WeekStart string `json:"week_start"`
}

func (r *GetWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetAssignmentsRequest struct {
	WeekStart   string            `json:"week_start"`
	Date        string            `json:"date"`
	EmployeeID  string            `json:"employee_id"`
	Assignments []AssignmentInput `json:"assignments"`
	Description string            `json:"description"`
}

func (r *SetAssignmentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a valid YYYY-MM-DD date",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetDayStatusRequest struct {
	WeekStart string `json:"week_start"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

func (r *SetDayStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a valid YYYY-MM-DD date",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetCompletedRequest struct {
	WeekStart string `json:"week_start"`
	Completed bool   `json:"completed"`
}

type ScheduleResponse struct {
	ID          string            `json:"id"`
	WeekStart   string            `json:"week_start"`
	Assignments WeekAssignments   `json:"assignments"`
	DayStatus   map[string]string `json:"day_status"`
	Completed   bool              `json:"completed"`
	UpdatedAt   string            `json:"updated_at"`
}

func ToResponse(s Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:          s.ID,
		WeekStart:   s.WeekStart,
		Assignments: s.Assignments,
		DayStatus:   s.DayStatus,
		Completed:   s.Completed,
		UpdatedAt:   s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

type EditSessionResponse struct {
	SessionID string `json:"session_id"`
	WeekStart string `json:"week_start"`
	CanUndo   bool   `json:"can_undo"`
	CanRedo   bool   `json:"can_redo"`
}
