package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turnolab/turnos-backend-go/internal/domain/employee"
	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/domain/settings"
	"github.com/turnolab/turnos-backend-go/internal/domain/stats"
	"github.com/turnolab/turnos-backend-go/internal/pkg/timeutil"
)

func TestMonthWindow(t *testing.T) {
	t.Run("default anchor is the calendar month", func(t *testing.T) {
		from, to := MonthWindow(2026, time.March, 1)
		assert.Equal(t, "2026-03-01", timeutil.FormatDate(from))
		assert.Equal(t, "2026-03-31", timeutil.FormatDate(to))
	})

	t.Run("custom anchor shifts the window", func(t *testing.T) {
		from, to := MonthWindow(2026, time.March, 15)
		assert.Equal(t, "2026-03-15", timeutil.FormatDate(from))
		assert.Equal(t, "2026-04-14", timeutil.FormatDate(to))
	})

	t.Run("december wraps into january", func(t *testing.T) {
		from, to := MonthWindow(2025, time.December, 10)
		assert.Equal(t, "2025-12-10", timeutil.FormatDate(from))
		assert.Equal(t, "2026-01-09", timeutil.FormatDate(to))
	})

	t.Run("anchor beyond month length clamps to last day", func(t *testing.T) {
		from, to := MonthWindow(2026, time.February, 31)
		assert.Equal(t, "2026-02-28", timeutil.FormatDate(from))
		assert.Equal(t, "2026-03-30", timeutil.FormatDate(to))
	})
}

// buildAssignments lays a repeating weekly pattern over [from, to]:
// employee e1 works 08:00-17:00 Monday through Friday and has a franco on
// Saturday; employee e2 takes a licencia every Tuesday and a timed medio
// franco every Thursday.
func buildAssignments(from, to time.Time) map[string]schedule.DayAssignments {
	out := make(map[string]schedule.DayAssignments)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		cell := make(schedule.DayAssignments)
		switch day.Weekday() {
		case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
			cell["e1"] = []schedule.Assignment{schedule.NewShiftAssignment("", "08:00", "17:00")}
		case time.Saturday:
			cell["e1"] = []schedule.Assignment{schedule.NewFranco()}
		}
		switch day.Weekday() {
		case time.Tuesday:
			cell["e2"] = []schedule.Assignment{schedule.NewLicencia("09:00", "13:00")}
		case time.Thursday:
			cell["e2"] = []schedule.Assignment{schedule.NewMedioFranco("08:00", "12:00")}
		}
		out[timeutil.FormatDate(day)] = cell
	}
	return out
}

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "e1", FullName: "Ana Pérez"},
		{ID: "e2", FullName: "Luis Gómez"},
	}
}

func TestAggregateRange_EmptyScheduleYieldsZeroedStats(t *testing.T) {
	calc := NewCalculator(nil, nil)
	config := settings.DefaultScheduleConfig()

	from, _ := timeutil.ParseDate("2026-03-02")
	got := AggregateRange(calc, map[string]schedule.DayAssignments{}, testEmployees(), config, from, from.AddDate(0, 0, 6))

	require.Len(t, got, 2)
	assert.Zero(t, got["e1"].NormalHours)
	assert.Zero(t, got["e1"].Francos)
	assert.Equal(t, "Ana Pérez", got["e1"].EmployeeName)
}

func TestAggregateRange_OneWeek(t *testing.T) {
	calc := NewCalculator(nil, nil)
	config := settings.DefaultScheduleConfig()

	from, _ := timeutil.ParseDate("2026-03-02") // a Monday
	to := from.AddDate(0, 0, 6)
	got := AggregateRange(calc, buildAssignments(from, to), testEmployees(), config, from, to)

	// e1: five 9h days, each 8.5h after break -> 40 normal + 2.5 overtime,
	// plus one franco.
	e1 := got["e1"]
	assert.InDelta(t, 40.0, e1.NormalHours, 1e-9)
	assert.InDelta(t, 2.5, e1.OvertimeHours, 1e-9)
	assert.Equal(t, 1.0, e1.Francos)
	assert.Equal(t, 5, e1.DaysWorked)

	// e2: one 4h licencia and one timed medio franco.
	e2 := got["e2"]
	assert.InDelta(t, 4.0, e2.LeaveHours, 1e-9)
	assert.Equal(t, 0.5, e2.Francos)
	assert.InDelta(t, 4.0, e2.HalfDayHours, 1e-9)
	assert.InDelta(t, 4.0, e2.NormalHours, 1e-9)
	assert.Equal(t, 1, e2.DaysOnLeave)

	// Derived monthly quantity is never stored, always recomputed.
	assert.InDelta(t, e2.NormalHours+e2.OvertimeHours+e2.LeaveHours, e2.ComputableHours(), 1e-9)
}

// The aggregator invariant: weeks fully inside a custom month window plus
// the clipped boundary days must sum to exactly the month's stats. No day
// is double-counted or dropped.
func TestAggregateRange_WeeklySumsMatchMonthlyWindow(t *testing.T) {
	calc := NewCalculator(nil, nil)
	config := settings.DefaultScheduleConfig()
	config.MonthStartDay = 2

	monthFrom, monthTo := MonthWindow(2026, time.March, config.MonthStartDay)
	require.Equal(t, "2026-03-02", timeutil.FormatDate(monthFrom))
	require.Equal(t, "2026-04-01", timeutil.FormatDate(monthTo))

	// Data extends beyond the window on both sides on purpose.
	assignments := buildAssignments(monthFrom.AddDate(0, 0, -14), monthTo.AddDate(0, 0, 14))
	employees := testEmployees()

	monthly := AggregateRange(calc, assignments, employees, config, monthFrom, monthTo)

	// Walk the window week by week, clipping the final partial week.
	summed := map[string]stats.EmployeeStats{}
	for weekStart := monthFrom; !weekStart.After(monthTo); weekStart = weekStart.AddDate(0, 0, 7) {
		weekEnd := weekStart.AddDate(0, 0, 6)
		if weekEnd.After(monthTo) {
			weekEnd = monthTo
		}
		weekly := AggregateRange(calc, assignments, employees, config, weekStart, weekEnd)
		for id, ws := range weekly {
			agg := summed[id]
			agg.EmployeeID = ws.EmployeeID
			agg.Francos += ws.Francos
			agg.NormalHours += ws.NormalHours
			agg.OvertimeHours += ws.OvertimeHours
			agg.LeaveHours += ws.LeaveHours
			agg.HalfDayHours += ws.HalfDayHours
			agg.DaysWorked += ws.DaysWorked
			agg.DaysOnLeave += ws.DaysOnLeave
			summed[id] = agg
		}
	}

	for _, emp := range employees {
		assert.InDelta(t, monthly[emp.ID].Francos, summed[emp.ID].Francos, 1e-9, emp.ID)
		assert.InDelta(t, monthly[emp.ID].NormalHours, summed[emp.ID].NormalHours, 1e-9, emp.ID)
		assert.InDelta(t, monthly[emp.ID].OvertimeHours, summed[emp.ID].OvertimeHours, 1e-9, emp.ID)
		assert.InDelta(t, monthly[emp.ID].LeaveHours, summed[emp.ID].LeaveHours, 1e-9, emp.ID)
		assert.InDelta(t, monthly[emp.ID].HalfDayHours, summed[emp.ID].HalfDayHours, 1e-9, emp.ID)
		assert.Equal(t, monthly[emp.ID].DaysWorked, summed[emp.ID].DaysWorked, emp.ID)
	}
}

func TestMergeAssignments(t *testing.T) {
	docA := schedule.Schedule{
		WeekStart: "2026-03-02",
		Assignments: schedule.WeekAssignments{
			"2026-03-02": {"e1": []schedule.Assignment{schedule.NewFranco()}},
		},
	}
	docB := schedule.Schedule{
		WeekStart: "2026-03-09",
		Assignments: schedule.WeekAssignments{
			"2026-03-09": {"e1": []schedule.Assignment{schedule.NewNota("check")}},
		},
	}

	merged := MergeAssignments([]schedule.Schedule{docA, docB})
	assert.Len(t, merged, 2)
	assert.Equal(t, schedule.KindFranco, merged["2026-03-02"]["e1"][0].Kind)
	assert.Equal(t, schedule.KindNota, merged["2026-03-09"]["e1"][0].Kind)
}
