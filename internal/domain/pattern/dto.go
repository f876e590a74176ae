package pattern

import (
	"github.com/turnolab/turnos-backend-go/internal/pkg/validator"
)

type SuggestionsRequest struct {
	EmployeeID string `json:"employee_id"`
	WeekStart  string `json:"week_start"`
}

func (r *SuggestionsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
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

type SuggestionsResponse struct {
	EmployeeID  string             `json:"employee_id"`
	WeekStart   string             `json:"week_start"`
	Suggestions map[int]Suggestion `json:"suggestions"` // keyed by day-of-week
}
