package schedule

import "context"

type ScheduleService interface {
	// Week documents
	GetOrCreateWeek(ctx context.Context, req GetWeekRequest) (ScheduleResponse, error)
	SetAssignments(ctx context.Context, req SetAssignmentsRequest) (ScheduleResponse, error)
	SetDayStatus(ctx context.Context, req SetDayStatusRequest) (ScheduleResponse, error)
	SetCompleted(ctx context.Context, req SetCompletedRequest) (ScheduleResponse, error)

	// Editing sessions (undo/redo scope)
	BeginEditSession(ctx context.Context, req GetWeekRequest) (EditSessionResponse, error)
	Undo(ctx context.Context, sessionID string) (ScheduleResponse, error)
	Redo(ctx context.Context, sessionID string) (ScheduleResponse, error)
	EndEditSession(ctx context.Context, sessionID string) error
}
