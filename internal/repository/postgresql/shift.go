package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/turnolab/turnos-backend-go/internal/domain/shift"
	"github.com/turnolab/turnos-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shifts (company_id, name, color, start_time, end_time, start_time_2, end_time_2)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, company_id, name, color, start_time, end_time, start_time_2, end_time_2, created_at, updated_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query,
		newShift.CompanyID, newShift.Name, newShift.Color,
		newShift.StartTime, newShift.EndTime, newShift.StartTime2, newShift.EndTime2,
	).Scan(
		&created.ID, &created.CompanyID, &created.Name, &created.Color,
		&created.StartTime, &created.EndTime, &created.StartTime2, &created.EndTime2,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, company_id, name, color, start_time, end_time, start_time_2, end_time_2, created_at, updated_at
		FROM shifts
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var found shift.Shift
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID, &found.CompanyID, &found.Name, &found.Color,
		&found.StartTime, &found.EndTime, &found.StartTime2, &found.EndTime2,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by id: %w", err)
	}

	return found, nil
}

// GetByCompanyID implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, company_id, name, color, start_time, end_time, start_time_2, end_time_2, created_at, updated_at
		FROM shifts
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY start_time, name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(
			&sh.ID, &sh.CompanyID, &sh.Name, &sh.Color,
			&sh.StartTime, &sh.EndTime, &sh.StartTime2, &sh.EndTime2,
			&sh.CreatedAt, &sh.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftRequest, companyID string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.StartTime2 != nil {
		updates["start_time_2"] = *req.StartTime2
	}
	if req.EndTime2 != nil {
		updates["end_time_2"] = *req.EndTime2
	}

	if len(updates) == 0 {
		return s.GetByID(ctx, req.ID, companyID)
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	query := "UPDATE shifts SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL", i, i+1) +
		" RETURNING id, company_id, name, color, start_time, end_time, start_time_2, end_time_2, created_at, updated_at"
	args = append(args, req.ID, companyID)

	var updated shift.Shift
	err := q.QueryRow(ctx, query, args...).Scan(
		&updated.ID, &updated.CompanyID, &updated.Name, &updated.Color,
		&updated.StartTime, &updated.EndTime, &updated.StartTime2, &updated.EndTime2,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return updated, nil
}

// SoftDelete implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) SoftDelete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id, companyID).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

type halfShiftRepositoryImpl struct {
	db *database.DB
}

func NewHalfShiftRepository(db *database.DB) shift.HalfShiftRepository {
	return &halfShiftRepositoryImpl{db: db}
}

// Create implements shift.HalfShiftRepository.
func (h *halfShiftRepositoryImpl) Create(ctx context.Context, newHalfShift shift.HalfShift) (shift.HalfShift, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO half_shifts (company_id, name, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, company_id, name, start_time, end_time, created_at, updated_at
	`

	var created shift.HalfShift
	err := q.QueryRow(ctx, query,
		newHalfShift.CompanyID, newHalfShift.Name, newHalfShift.StartTime, newHalfShift.EndTime,
	).Scan(
		&created.ID, &created.CompanyID, &created.Name,
		&created.StartTime, &created.EndTime, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return shift.HalfShift{}, fmt.Errorf("failed to create half shift: %w", err)
	}
	return created, nil
}

// GetByID implements shift.HalfShiftRepository.
func (h *halfShiftRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (shift.HalfShift, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, name, start_time, end_time, created_at, updated_at
		FROM half_shifts
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var found shift.HalfShift
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID, &found.CompanyID, &found.Name,
		&found.StartTime, &found.EndTime, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.HalfShift{}, shift.ErrHalfShiftNotFound
		}
		return shift.HalfShift{}, fmt.Errorf("failed to get half shift by id: %w", err)
	}

	return found, nil
}

// GetByCompanyID implements shift.HalfShiftRepository.
func (h *halfShiftRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]shift.HalfShift, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, name, start_time, end_time, created_at, updated_at
		FROM half_shifts
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY start_time, name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list half shifts: %w", err)
	}
	defer rows.Close()

	var halfShifts []shift.HalfShift
	for rows.Next() {
		var hs shift.HalfShift
		if err := rows.Scan(
			&hs.ID, &hs.CompanyID, &hs.Name,
			&hs.StartTime, &hs.EndTime, &hs.CreatedAt, &hs.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan half shift: %w", err)
		}
		halfShifts = append(halfShifts, hs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate half shifts: %w", err)
	}

	return halfShifts, nil
}

// Update implements shift.HalfShiftRepository.
func (h *halfShiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateHalfShiftRequest, companyID string) (shift.HalfShift, error) {
	q := GetQuerier(ctx, h.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}

	if len(updates) == 0 {
		return h.GetByID(ctx, req.ID, companyID)
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	query := "UPDATE half_shifts SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL", i, i+1) +
		" RETURNING id, company_id, name, start_time, end_time, created_at, updated_at"
	args = append(args, req.ID, companyID)

	var updated shift.HalfShift
	err := q.QueryRow(ctx, query, args...).Scan(
		&updated.ID, &updated.CompanyID, &updated.Name,
		&updated.StartTime, &updated.EndTime, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.HalfShift{}, shift.ErrHalfShiftNotFound
		}
		return shift.HalfShift{}, fmt.Errorf("failed to update half shift: %w", err)
	}

	return updated, nil
}

// SoftDelete implements shift.HalfShiftRepository.
func (h *halfShiftRepositoryImpl) SoftDelete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, h.db)

	query := `
		UPDATE half_shifts
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id, companyID).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrHalfShiftNotFound
		}
		return fmt.Errorf("failed to delete half shift: %w", err)
	}
	return nil
}
