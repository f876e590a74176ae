package stats

import (
	"github.com/turnolab/turnos-backend-go/internal/pkg/validator"
)

type WeeklyStatsRequest struct {
	WeekStart string `json:"week_start"`
}

func (r *WeeklyStatsRequest) Validate() error {
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

type MonthlyStatsRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *MonthlyStatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StatsResponse struct {
	PeriodStart string                   `json:"period_start"`
	PeriodEnd   string                   `json:"period_end"`
	GeneratedAt string                   `json:"generated_at"`
	Employees   map[string]EmployeeStats `json:"employees"`
}
