package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/settings"
	"github.com/turnolab/turnos-backend-go/internal/pkg/database"
)

type scheduleConfigRepositoryImpl struct {
	db *database.DB
}

func NewScheduleConfigRepository(db *database.DB) settings.ScheduleConfigRepository {
	return &scheduleConfigRepositoryImpl{db: db}
}

// GetByCompanyID implements settings.ScheduleConfigRepository.
func (s *scheduleConfigRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) (settings.ScheduleConfig, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, company_id, break_minutes, min_hours_for_break, max_daily_hours, month_start_day, week_start_day, created_at, updated_at
		FROM schedule_configs
		WHERE company_id = $1
	`

	var found settings.ScheduleConfig
	err := q.QueryRow(ctx, query, companyID).Scan(
		&found.ID, &found.CompanyID,
		&found.BreakMinutes, &found.MinHoursForBreak, &found.MaxDailyHours,
		&found.MonthStartDay, &found.WeekStartDay,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.ScheduleConfig{}, settings.ErrScheduleConfigNotFound
		}
		return settings.ScheduleConfig{}, fmt.Errorf("failed to get schedule config: %w", err)
	}

	return found, nil
}

// Upsert implements settings.ScheduleConfigRepository. One row per company.
func (s *scheduleConfigRepositoryImpl) Upsert(ctx context.Context, config settings.ScheduleConfig) (settings.ScheduleConfig, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedule_configs (company_id, break_minutes, min_hours_for_break, max_daily_hours, month_start_day, week_start_day)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id) DO UPDATE SET
			break_minutes = EXCLUDED.break_minutes,
			min_hours_for_break = EXCLUDED.min_hours_for_break,
			max_daily_hours = EXCLUDED.max_daily_hours,
			month_start_day = EXCLUDED.month_start_day,
			week_start_day = EXCLUDED.week_start_day,
			updated_at = now()
		RETURNING id, company_id, break_minutes, min_hours_for_break, max_daily_hours, month_start_day, week_start_day, created_at, updated_at
	`

	var saved settings.ScheduleConfig
	err := q.QueryRow(ctx, query,
		config.CompanyID, config.BreakMinutes, config.MinHoursForBreak,
		config.MaxDailyHours, config.MonthStartDay, config.WeekStartDay,
	).Scan(
		&saved.ID, &saved.CompanyID,
		&saved.BreakMinutes, &saved.MinHoursForBreak, &saved.MaxDailyHours,
		&saved.MonthStartDay, &saved.WeekStartDay,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return settings.ScheduleConfig{}, fmt.Errorf("failed to upsert schedule config: %w", err)
	}

	return saved, nil
}
