package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/turnolab/turnos-backend-go/internal/domain/employee"
	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/pkg/timeutil"
)

// editSession is the server-side undo/redo scope for one schedule. A
// session owns its History exclusively; no snapshot crosses sessions.
type editSession struct {
	id         string
	companyID  string
	scheduleID string
	weekStart  string
	history    *History
	createdAt  time.Time
}

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository

	mu       sync.Mutex
	sessions map[string]*editSession
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		sessions:     make(map[string]*editSession),
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *ScheduleServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// GetOrCreateWeek implements schedule.ScheduleService. Reading a week that
// was never edited creates its empty document.
func (s *ScheduleServiceImpl) GetOrCreateWeek(ctx context.Context, req schedule.GetWeekRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	doc, err := s.getOrCreate(ctx, companyID, req.WeekStart)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return schedule.ToResponse(doc), nil
}

func (s *ScheduleServiceImpl) getOrCreate(ctx context.Context, companyID, weekStart string) (schedule.Schedule, error) {
	doc, err := s.scheduleRepo.GetByWeekStart(ctx, companyID, weekStart)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, schedule.ErrScheduleNotFound) {
		return schedule.Schedule{}, fmt.Errorf("failed to load schedule: %w", err)
	}

	doc, err = s.scheduleRepo.Create(ctx, schedule.Schedule{
		CompanyID:   companyID,
		WeekStart:   weekStart,
		Assignments: make(schedule.WeekAssignments),
		DayStatus:   make(map[string]string),
	})
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return doc, nil
}

// SetAssignments implements schedule.ScheduleService. It replaces one
// (date, employee) cell of the week. The employee reference is checked
// against the roster: pointing a cell at a nonexistent employee is a
// caller bug, not a data-quality issue. Assignment payloads are normalized
// once here, at the write boundary.
func (s *ScheduleServiceImpl) SetAssignments(ctx context.Context, req schedule.SetAssignmentsRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if err := validateDateInWeek(req.WeekStart, req.Date); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return schedule.ScheduleResponse{}, employee.ErrEmployeeNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to verify employee: %w", err)
	}

	assignments, err := schedule.NormalizeAssignments(req.Assignments)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	doc, err := s.getOrCreate(ctx, companyID, req.WeekStart)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	doc.SetAssignments(req.Date, req.EmployeeID, assignments)

	updated, err := s.scheduleRepo.Update(ctx, doc)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	s.snapshotForSessions(updated, describeEdit(req))

	return schedule.ToResponse(updated), nil
}

func describeEdit(req schedule.SetAssignmentsRequest) string {
	if req.Description != "" {
		return req.Description
	}
	return fmt.Sprintf("edit %s on %s", req.EmployeeID, req.Date)
}

// validateDateInWeek rejects dates outside [weekStart, weekStart+6].
func validateDateInWeek(weekStart, date string) error {
	start, err := timeutil.ParseDate(weekStart)
	if err != nil {
		return schedule.ErrInvalidWeekStart
	}
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return schedule.ErrDateOutsideWeek
	}
	if day.Before(start) || day.After(start.AddDate(0, 0, 6)) {
		return schedule.ErrDateOutsideWeek
	}
	return nil
}

// snapshotForSessions records the updated assignment map in every open
// session editing this schedule.
func (s *ScheduleServiceImpl) snapshotForSessions(doc schedule.Schedule, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, session := range s.sessions {
		if session.companyID == doc.CompanyID && session.scheduleID == doc.ID {
			session.history.SaveState(doc.ID, doc.Assignments, description)
		}
	}
}

// SetDayStatus implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) SetDayStatus(ctx context.Context, req schedule.SetDayStatusRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if err := validateDateInWeek(req.WeekStart, req.Date); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	doc, err := s.getOrCreate(ctx, companyID, req.WeekStart)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if doc.DayStatus == nil {
		doc.DayStatus = make(map[string]string)
	}
	if req.Status == "" {
		delete(doc.DayStatus, req.Date)
	} else {
		doc.DayStatus[req.Date] = req.Status
	}

	updated, err := s.scheduleRepo.Update(ctx, doc)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return schedule.ToResponse(updated), nil
}

// SetCompleted implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) SetCompleted(ctx context.Context, req schedule.SetCompletedRequest) (schedule.ScheduleResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if _, err := timeutil.ParseDate(req.WeekStart); err != nil {
		return schedule.ScheduleResponse{}, schedule.ErrInvalidWeekStart
	}

	doc, err := s.getOrCreate(ctx, companyID, req.WeekStart)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	doc.Completed = req.Completed

	updated, err := s.scheduleRepo.Update(ctx, doc)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return schedule.ToResponse(updated), nil
}

// BeginEditSession implements schedule.ScheduleService. It opens an
// undo/redo scope over one week, seeded with the week's current state.
func (s *ScheduleServiceImpl) BeginEditSession(ctx context.Context, req schedule.GetWeekRequest) (schedule.EditSessionResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.EditSessionResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return schedule.EditSessionResponse{}, err
	}

	doc, err := s.getOrCreate(ctx, companyID, req.WeekStart)
	if err != nil {
		return schedule.EditSessionResponse{}, err
	}

	session := &editSession{
		id:         uuid.New().String(),
		companyID:  companyID,
		scheduleID: doc.ID,
		weekStart:  doc.WeekStart,
		history:    NewHistory(DefaultHistorySize),
		createdAt:  time.Now(),
	}
	session.history.SaveState(doc.ID, doc.Assignments, "session start")

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	return schedule.EditSessionResponse{
		SessionID: session.id,
		WeekStart: session.weekStart,
		CanUndo:   false,
		CanRedo:   false,
	}, nil
}

// Undo implements schedule.ScheduleService. Undoing past the start of the
// session is a no-op that returns the schedule unchanged.
func (s *ScheduleServiceImpl) Undo(ctx context.Context, sessionID string) (schedule.ScheduleResponse, error) {
	return s.restore(ctx, sessionID, func(h *History) *schedule.UndoState { return h.Undo() })
}

// Redo implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Redo(ctx context.Context, sessionID string) (schedule.ScheduleResponse, error) {
	return s.restore(ctx, sessionID, func(h *History) *schedule.UndoState { return h.Redo() })
}

func (s *ScheduleServiceImpl) restore(ctx context.Context, sessionID string, step func(*History) *schedule.UndoState) (schedule.ScheduleResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if ok && session.companyID != companyID {
		ok = false
	}
	var state *schedule.UndoState
	if ok {
		state = step(session.history)
	}
	s.mu.Unlock()

	if !ok {
		return schedule.ScheduleResponse{}, schedule.ErrEditSessionNotFound
	}

	doc, err := s.scheduleRepo.GetByID(ctx, session.scheduleID, companyID)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to load schedule: %w", err)
	}

	if state == nil {
		// Nothing to step to; not an error.
		return schedule.ToResponse(doc), nil
	}

	doc.Assignments = state.Assignments.Clone()

	updated, err := s.scheduleRepo.Update(ctx, doc)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return schedule.ToResponse(updated), nil
}

// EndEditSession implements schedule.ScheduleService. The session's
// history is discarded with it.
func (s *ScheduleServiceImpl) EndEditSession(ctx context.Context, sessionID string) error {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.companyID != companyID {
		return schedule.ErrEditSessionNotFound
	}

	session.history.Clear()
	delete(s.sessions, sessionID)
	return nil
}
