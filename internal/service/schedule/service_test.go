package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnolab/turnos-backend-go/internal/domain/employee"
	domain "github.com/turnolab/turnos-backend-go/internal/domain/schedule"
)

// fakeScheduleRepo keeps schedules in memory, keyed by (company, week).
type fakeScheduleRepo struct {
	nextID    int
	schedules map[string]domain.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]domain.Schedule)}
}

func (r *fakeScheduleRepo) key(companyID, weekStart string) string {
	return companyID + "/" + weekStart
}

func (r *fakeScheduleRepo) Create(_ context.Context, s domain.Schedule) (domain.Schedule, error) {
	r.nextID++
	s.ID = fmt.Sprintf("sched-%d", r.nextID)
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.schedules[r.key(s.CompanyID, s.WeekStart)] = s
	return s, nil
}

func (r *fakeScheduleRepo) GetByID(_ context.Context, id string, companyID string) (domain.Schedule, error) {
	for _, s := range r.schedules {
		if s.ID == id && s.CompanyID == companyID {
			return s, nil
		}
	}
	return domain.Schedule{}, domain.ErrScheduleNotFound
}

func (r *fakeScheduleRepo) GetByWeekStart(_ context.Context, companyID string, weekStart string) (domain.Schedule, error) {
	s, ok := r.schedules[r.key(companyID, weekStart)]
	if !ok {
		return domain.Schedule{}, domain.ErrScheduleNotFound
	}
	return s, nil
}

func (r *fakeScheduleRepo) GetByDateRange(_ context.Context, companyID string, from, to string) ([]domain.Schedule, error) {
	return nil, nil
}

func (r *fakeScheduleRepo) GetRecent(_ context.Context, companyID string, before string, limit int) ([]domain.Schedule, error) {
	return nil, nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, s domain.Schedule) (domain.Schedule, error) {
	s.UpdatedAt = time.Now()
	r.schedules[r.key(s.CompanyID, s.WeekStart)] = s
	return s, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest, companyID string) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (r *fakeEmployeeRepo) SoftDelete(_ context.Context, id string, companyID string) error {
	return nil
}

func authedContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"company_id": companyID,
		"user_id":    "u1",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService() (domain.ScheduleService, *fakeScheduleRepo) {
	scheduleRepo := newFakeScheduleRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"e1": {ID: "e1", CompanyID: "c1", FullName: "Ana Duarte", Active: true},
	}}
	return NewScheduleService(scheduleRepo, employeeRepo), scheduleRepo
}

func TestScheduleService_GetOrCreateWeek(t *testing.T) {
	svc, repo := newTestService()
	ctx := authedContext(t, "c1")

	first, err := svc.GetOrCreateWeek(ctx, domain.GetWeekRequest{WeekStart: "2026-02-09"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Empty(t, first.Assignments)

	again, err := svc.GetOrCreateWeek(ctx, domain.GetWeekRequest{WeekStart: "2026-02-09"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Len(t, repo.schedules, 1)
}

func TestScheduleService_SetAssignments(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, "c1")

	resp, err := svc.SetAssignments(ctx, domain.SetAssignmentsRequest{
		WeekStart:  "2026-02-09",
		Date:       "2026-02-10",
		EmployeeID: "e1",
		Assignments: []domain.AssignmentInput{
			{Kind: "shift", StartTime: "08:00", EndTime: "17:00"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Assignments["2026-02-10"]["e1"], 1)
	assert.Equal(t, domain.KindShift, resp.Assignments["2026-02-10"]["e1"][0].Kind)
}

func TestScheduleService_SetAssignmentsUnknownEmployee(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, "c1")

	_, err := svc.SetAssignments(ctx, domain.SetAssignmentsRequest{
		WeekStart:   "2026-02-09",
		Date:        "2026-02-10",
		EmployeeID:  "ghost",
		Assignments: []domain.AssignmentInput{{Kind: "franco"}},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestScheduleService_SetAssignmentsDateOutsideWeek(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, "c1")

	_, err := svc.SetAssignments(ctx, domain.SetAssignmentsRequest{
		WeekStart:   "2026-02-09",
		Date:        "2026-02-20",
		EmployeeID:  "e1",
		Assignments: []domain.AssignmentInput{{Kind: "franco"}},
	})
	assert.ErrorIs(t, err, domain.ErrDateOutsideWeek)
}

func TestScheduleService_UndoRedoThroughSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, "c1")

	session, err := svc.BeginEditSession(ctx, domain.GetWeekRequest{WeekStart: "2026-02-09"})
	require.NoError(t, err)
	assert.False(t, session.CanUndo)

	_, err = svc.SetAssignments(ctx, domain.SetAssignmentsRequest{
		WeekStart:   "2026-02-09",
		Date:        "2026-02-10",
		EmployeeID:  "e1",
		Assignments: []domain.AssignmentInput{{Kind: "shift", StartTime: "08:00", EndTime: "17:00"}},
	})
	require.NoError(t, err)

	_, err = svc.SetAssignments(ctx, domain.SetAssignmentsRequest{
		WeekStart:   "2026-02-09",
		Date:        "2026-02-10",
		EmployeeID:  "e1",
		Assignments: []domain.AssignmentInput{{Kind: "franco"}},
	})
	require.NoError(t, err)

	undone, err := svc.Undo(ctx, session.SessionID)
	require.NoError(t, err)
	require.Len(t, undone.Assignments["2026-02-10"]["e1"], 1)
	assert.Equal(t, domain.KindShift, undone.Assignments["2026-02-10"]["e1"][0].Kind)

	redone, err := svc.Redo(ctx, session.SessionID)
	require.NoError(t, err)
	require.Len(t, redone.Assignments["2026-02-10"]["e1"], 1)
	assert.Equal(t, domain.KindFranco, redone.Assignments["2026-02-10"]["e1"][0].Kind)
}

func TestScheduleService_UndoAtSessionStartIsNoop(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, "c1")

	session, err := svc.BeginEditSession(ctx, domain.GetWeekRequest{WeekStart: "2026-02-09"})
	require.NoError(t, err)

	resp, err := svc.Undo(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, resp.Assignments)
}

func TestScheduleService_EndEditSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, "c1")

	session, err := svc.BeginEditSession(ctx, domain.GetWeekRequest{WeekStart: "2026-02-09"})
	require.NoError(t, err)

	require.NoError(t, svc.EndEditSession(ctx, session.SessionID))

	_, err = svc.Undo(ctx, session.SessionID)
	assert.ErrorIs(t, err, domain.ErrEditSessionNotFound)

	err = svc.EndEditSession(ctx, session.SessionID)
	assert.ErrorIs(t, err, domain.ErrEditSessionNotFound)
}

func TestScheduleService_SessionsAreTenantScoped(t *testing.T) {
	svc, _ := newTestService()

	session, err := svc.BeginEditSession(authedContext(t, "c1"), domain.GetWeekRequest{WeekStart: "2026-02-09"})
	require.NoError(t, err)

	_, err = svc.Undo(authedContext(t, "c2"), session.SessionID)
	assert.ErrorIs(t, err, domain.ErrEditSessionNotFound)
}
