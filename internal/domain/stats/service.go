package stats

import "context"

type StatsService interface {
	// WeeklyStats aggregates exactly 7 calendar days starting at the
	// requested week start.
	WeeklyStats(ctx context.Context, req WeeklyStatsRequest) (StatsResponse, error)
	// MonthlyStats aggregates the custom month window anchored at the
	// company's configured month start day.
	MonthlyStats(ctx context.Context, req MonthlyStatsRequest) (StatsResponse, error)
}
