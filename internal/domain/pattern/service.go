package pattern

import "context"

type PatternService interface {
	// SuggestWeek mines the employee's recent schedules and returns one
	// advisory suggestion per day-of-week that has a recurring assignment.
	SuggestWeek(ctx context.Context, req SuggestionsRequest) (SuggestionsResponse, error)
}
