package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/turnolab/turnos-backend-go/internal/domain/employee"
	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/domain/settings"
	"github.com/turnolab/turnos-backend-go/internal/domain/shift"
	"github.com/turnolab/turnos-backend-go/internal/domain/stats"
	"github.com/turnolab/turnos-backend-go/internal/pkg/timeutil"
)

type StatsServiceImpl struct {
	scheduleRepo  schedule.ScheduleRepository
	employeeRepo  employee.EmployeeRepository
	shiftRepo     shift.ShiftRepository
	halfShiftRepo shift.HalfShiftRepository
	configRepo    settings.ScheduleConfigRepository
}

func NewStatsService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	halfShiftRepo shift.HalfShiftRepository,
	configRepo settings.ScheduleConfigRepository,
) stats.StatsService {
	return &StatsServiceImpl{
		scheduleRepo:  scheduleRepo,
		employeeRepo:  employeeRepo,
		shiftRepo:     shiftRepo,
		halfShiftRepo: halfShiftRepo,
		configRepo:    configRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *StatsServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
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

// MonthWindow returns the custom month window for (year, month): it starts
// on the configured day of that calendar month and ends the day before the
// next window starts. Start days beyond a month's length clamp to its last
// day, so a window anchored on the 31st still begins inside February.
func MonthWindow(year int, month time.Month, startDay int) (time.Time, time.Time) {
	start := clampedDate(year, month, startDay)
	nextYear, nextMonth := year, month+1
	if nextMonth > time.December {
		nextYear, nextMonth = year+1, time.January
	}
	end := clampedDate(nextYear, nextMonth, startDay).AddDate(0, 0, -1)
	return start, end
}

func clampedDate(year int, month time.Month, day int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MergeAssignments flattens schedule documents into one date-keyed map.
// Later documents win on date collisions, which cannot happen for
// well-formed data (one document per week).
func MergeAssignments(schedules []schedule.Schedule) map[string]schedule.DayAssignments {
	merged := make(map[string]schedule.DayAssignments)
	for _, doc := range schedules {
		for date, day := range doc.Assignments {
			merged[date] = day
		}
	}
	return merged
}

// AggregateRange folds every in-range employee-day into per-employee
// totals. Days outside [from, to] are skipped even when present in the
// input, which is what keeps boundary weeks from leaking hours across two
// custom month windows. Empty input yields zeroed stats per employee.
func AggregateRange(
	calc *Calculator,
	assignmentsByDate map[string]schedule.DayAssignments,
	employees []employee.Employee,
	config settings.ScheduleConfig,
	from, to time.Time,
) map[string]stats.EmployeeStats {
	result := make(map[string]stats.EmployeeStats, len(employees))

	for _, emp := range employees {
		empStats := stats.EmployeeStats{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
		}

		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			date := timeutil.FormatDate(day)
			dayAssignments := assignmentsByDate[date][emp.ID]
			if len(dayAssignments) == 0 {
				continue
			}
			empStats.Accumulate(calc.DayImpact(dayAssignments, config))
		}

		result[emp.ID] = empStats
	}

	return result
}

// WeeklyStats implements stats.StatsService.
func (s *StatsServiceImpl) WeeklyStats(ctx context.Context, req stats.WeeklyStatsRequest) (stats.StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return stats.StatsResponse{}, err
	}

	from, err := timeutil.ParseDate(req.WeekStart)
	if err != nil {
		return stats.StatsResponse{}, schedule.ErrInvalidWeekStart
	}
	to := from.AddDate(0, 0, 6)

	return s.rangeStats(ctx, from, to)
}

// MonthlyStats implements stats.StatsService.
func (s *StatsServiceImpl) MonthlyStats(ctx context.Context, req stats.MonthlyStatsRequest) (stats.StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return stats.StatsResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return stats.StatsResponse{}, err
	}

	config, err := s.loadConfig(ctx, companyID)
	if err != nil {
		return stats.StatsResponse{}, err
	}

	from, to := MonthWindow(req.Year, time.Month(req.Month), config.MonthStartDay)
	return s.rangeStats(ctx, from, to)
}

func (s *StatsServiceImpl) rangeStats(ctx context.Context, from, to time.Time) (stats.StatsResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return stats.StatsResponse{}, err
	}

	config, err := s.loadConfig(ctx, companyID)
	if err != nil {
		return stats.StatsResponse{}, err
	}

	employees, err := s.employeeRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return stats.StatsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	shifts, err := s.shiftRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return stats.StatsResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	halfShifts, err := s.halfShiftRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return stats.StatsResponse{}, fmt.Errorf("failed to list half shifts: %w", err)
	}

	// Boundary weeks may belong to two windows; fetching by overlap and
	// filtering per day attributes each day to exactly one window.
	schedules, err := s.scheduleRepo.GetByDateRange(ctx, companyID, timeutil.FormatDate(from), timeutil.FormatDate(to))
	if err != nil {
		return stats.StatsResponse{}, fmt.Errorf("failed to load schedules: %w", err)
	}

	calc := NewCalculator(shifts, halfShifts)
	employeeStats := AggregateRange(calc, MergeAssignments(schedules), employees, config, from, to)

	return stats.StatsResponse{
		PeriodStart: timeutil.FormatDate(from),
		PeriodEnd:   timeutil.FormatDate(to),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Employees:   employeeStats,
	}, nil
}

func (s *StatsServiceImpl) loadConfig(ctx context.Context, companyID string) (settings.ScheduleConfig, error) {
	config, err := s.configRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, settings.ErrScheduleConfigNotFound) {
			// A company without stored settings runs on the defaults.
			return settings.DefaultScheduleConfig(), nil
		}
		return settings.ScheduleConfig{}, fmt.Errorf("failed to load schedule configuration: %w", err)
	}
	return config.Normalized(), nil
}
