package schedule

import "errors"

// Schedule domain errors. Invalid employee or schedule references are
// contract violations and surface as hard failures; data-quality issues
// (malformed times, unknown kinds) never do.
var (
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrEditSessionNotFound = errors.New("edit session not found")
	ErrInvalidWeekStart    = errors.New("week start must be a valid YYYY-MM-DD date")
	ErrDateOutsideWeek     = errors.New("date does not fall inside the schedule week")
)
