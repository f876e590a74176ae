package settings

import (
	"github.com/turnolab/turnos-backend-go/internal/pkg/validator"
)

type UpdateScheduleConfigRequest struct {
	BreakMinutes     *int     `json:"break_minutes"`
	MinHoursForBreak *float64 `json:"min_hours_for_break"`
	MaxDailyHours    *float64 `json:"max_daily_hours"`
	MonthStartDay    *int     `json:"month_start_day"`
	WeekStartDay     *int     `json:"week_start_day"`
}

func (r *UpdateScheduleConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must be a non-negative number",
		})
	}
	if r.MinHoursForBreak != nil && *r.MinHoursForBreak < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_hours_for_break",
			Message: "min_hours_for_break must be a non-negative number",
		})
	}
	if r.MaxDailyHours != nil && *r.MaxDailyHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_daily_hours",
			Message: "max_daily_hours must be a positive number",
		})
	}
	if r.MonthStartDay != nil && (*r.MonthStartDay < 1 || *r.MonthStartDay > 31) {
		errs = append(errs, validator.ValidationError{
			Field:   "month_start_day",
			Message: "month_start_day must be between 1 and 31",
		})
	}
	if r.WeekStartDay != nil && (*r.WeekStartDay < 0 || *r.WeekStartDay > 6) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start_day",
			Message: "week_start_day must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply merges the request's populated fields over an existing config.
func (r *UpdateScheduleConfigRequest) Apply(config ScheduleConfig) ScheduleConfig {
	if r.BreakMinutes != nil {
		config.BreakMinutes = *r.BreakMinutes
	}
	if r.MinHoursForBreak != nil {
		config.MinHoursForBreak = *r.MinHoursForBreak
	}
	if r.MaxDailyHours != nil {
		config.MaxDailyHours = *r.MaxDailyHours
	}
	if r.MonthStartDay != nil {
		config.MonthStartDay = *r.MonthStartDay
	}
	if r.WeekStartDay != nil {
		config.WeekStartDay = *r.WeekStartDay
	}
	return config
}

type ScheduleConfigResponse struct {
	BreakMinutes     int     `json:"break_minutes"`
	MinHoursForBreak float64 `json:"min_hours_for_break"`
	MaxDailyHours    float64 `json:"max_daily_hours"`
	MonthStartDay    int     `json:"month_start_day"`
	WeekStartDay     int     `json:"week_start_day"`
}

func ToResponse(c ScheduleConfig) ScheduleConfigResponse {
	return ScheduleConfigResponse{
		BreakMinutes:     c.BreakMinutes,
		MinHoursForBreak: c.MinHoursForBreak,
		MaxDailyHours:    c.MaxDailyHours,
		MonthStartDay:    c.MonthStartDay,
		WeekStartDay:     c.WeekStartDay,
	}
}
