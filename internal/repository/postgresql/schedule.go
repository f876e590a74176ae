package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/pkg/database"
)

// scheduleRepositoryImpl stores one row per (company, week). The
// assignment grid and day statuses live in JSONB columns: the engine
// always reads and writes a week as a unit, so a relational breakdown of
// cells would only add joins.
type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var s schedule.Schedule
	var assignmentsJSON, dayStatusJSON []byte

	err := row.Scan(
		&s.ID, &s.CompanyID, &s.WeekStart,
		&assignmentsJSON, &dayStatusJSON, &s.Completed,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return schedule.Schedule{}, err
	}

	if len(assignmentsJSON) > 0 {
		if err := json.Unmarshal(assignmentsJSON, &s.Assignments); err != nil {
			return schedule.Schedule{}, fmt.Errorf("failed to decode assignments: %w", err)
		}
	}
	if s.Assignments == nil {
		s.Assignments = make(schedule.WeekAssignments)
	}

	if len(dayStatusJSON) > 0 {
		if err := json.Unmarshal(dayStatusJSON, &s.DayStatus); err != nil {
			return schedule.Schedule{}, fmt.Errorf("failed to decode day statuses: %w", err)
		}
	}
	if s.DayStatus == nil {
		s.DayStatus = make(map[string]string)
	}

	return s, nil
}

const scheduleColumns = "id, company_id, week_start, assignments, day_status, completed, created_at, updated_at"

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	assignmentsJSON, err := json.Marshal(s.Assignments)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to encode assignments: %w", err)
	}
	dayStatusJSON, err := json.Marshal(s.DayStatus)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to encode day statuses: %w", err)
	}

	query := `
		INSERT INTO schedules (company_id, week_start, assignments, day_status, completed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + scheduleColumns

	created, err := scanSchedule(q.QueryRow(ctx, query, s.CompanyID, s.WeekStart, assignmentsJSON, dayStatusJSON, s.Completed))
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	return created, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE id = $1 AND company_id = $2
	`

	found, err := scanSchedule(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule by id: %w", err)
	}
	return found, nil
}

// GetByWeekStart implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByWeekStart(ctx context.Context, companyID string, weekStart string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE company_id = $1 AND week_start = $2
	`

	found, err := scanSchedule(q.QueryRow(ctx, query, companyID, weekStart))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule by week start: %w", err)
	}
	return found, nil
}

// GetByDateRange implements schedule.ScheduleRepository. A week overlaps
// the range when it starts at most 6 days before the range ends and not
// after the range's end.
func (r *scheduleRepositoryImpl) GetByDateRange(ctx context.Context, companyID string, from, to string) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE company_id = $1
		  AND week_start::date >= $2::date - 6
		  AND week_start::date <= $3::date
		ORDER BY week_start
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

// GetRecent implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetRecent(ctx context.Context, companyID string, before string, limit int) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE company_id = $1 AND week_start < $2
		ORDER BY week_start DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, companyID, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent schedules: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func collectSchedules(rows pgx.Rows) ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}
	return schedules, nil
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Update(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	assignmentsJSON, err := json.Marshal(s.Assignments)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to encode assignments: %w", err)
	}
	dayStatusJSON, err := json.Marshal(s.DayStatus)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to encode day statuses: %w", err)
	}

	query := `
		UPDATE schedules
		SET assignments = $1, day_status = $2, completed = $3, updated_at = now()
		WHERE id = $4 AND company_id = $5
		RETURNING ` + scheduleColumns

	updated, err := scanSchedule(q.QueryRow(ctx, query, assignmentsJSON, dayStatusJSON, s.Completed, s.ID, s.CompanyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to update schedule: %w", err)
	}
	return updated, nil
}
