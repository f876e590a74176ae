package settings

import "time"

// ScheduleConfig holds the per-company scheduling rules. Every component of
// the hours engine reads these values; defaults live in DefaultScheduleConfig
// and nowhere else.
type ScheduleConfig struct {
	ID               string
	CompanyID        string
	BreakMinutes     int     // minutes deducted once per worked day
	MinHoursForBreak float64 // worked hours before the break applies
	MaxDailyHours    float64 // normal-hours ceiling before overtime accrues
	MonthStartDay    int     // day-of-month the custom month window starts on (1-31)
	WeekStartDay     int     // weekday the schedule week starts on (0=Sunday .. 6=Saturday)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultScheduleConfig returns the documented defaults applied whenever a
// company has no stored configuration or a stored field is missing.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		BreakMinutes:     30,
		MinHoursForBreak: 6,
		MaxDailyHours:    8,
		MonthStartDay:    1,
		WeekStartDay:     1,
	}
}

// Normalized returns a copy of the config with out-of-range fields replaced
// by their defaults. Zero values are treated as missing.
func (c ScheduleConfig) Normalized() ScheduleConfig {
	def := DefaultScheduleConfig()
	if c.BreakMinutes < 0 {
		c.BreakMinutes = def.BreakMinutes
	}
	if c.MinHoursForBreak <= 0 {
		c.MinHoursForBreak = def.MinHoursForBreak
	}
	if c.MaxDailyHours <= 0 {
		c.MaxDailyHours = def.MaxDailyHours
	}
	if c.MonthStartDay < 1 || c.MonthStartDay > 31 {
		c.MonthStartDay = def.MonthStartDay
	}
	if c.WeekStartDay < 0 || c.WeekStartDay > 6 {
		c.WeekStartDay = def.WeekStartDay
	}
	return c
}
