package schedule

import "context"

type ScheduleRepository interface {
	Create(ctx context.Context, schedule Schedule) (Schedule, error)
	GetByID(ctx context.Context, id string, companyID string) (Schedule, error)
	GetByWeekStart(ctx context.Context, companyID string, weekStart string) (Schedule, error)
	// GetByDateRange returns every schedule whose week overlaps [from, to],
	// both "YYYY-MM-DD" inclusive, ordered by week start ascending.
	GetByDateRange(ctx context.Context, companyID string, from, to string) ([]Schedule, error)
	// GetRecent returns up to limit schedules with week start strictly
	// before the given date, newest first. Used for pattern mining.
	GetRecent(ctx context.Context, companyID string, before string, limit int) ([]Schedule, error)
	Update(ctx context.Context, schedule Schedule) (Schedule, error)
}
