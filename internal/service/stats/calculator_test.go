package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/domain/settings"
	"github.com/turnolab/turnos-backend-go/internal/domain/shift"
	"github.com/turnolab/turnos-backend-go/internal/domain/stats"
)

func defaultConfig() settings.ScheduleConfig {
	return settings.DefaultScheduleConfig()
}

func testShifts() []shift.Shift {
	return []shift.Shift{
		{ID: "morning", Name: "Mañana", StartTime: "08:00", EndTime: "16:00"},
		{ID: "night", Name: "Noche", StartTime: "22:00", EndTime: "06:00"},
		{ID: "split", Name: "Partido", StartTime: "09:00", EndTime: "13:00", StartTime2: "17:00", EndTime2: "22:00"},
	}
}

func testHalfShifts() []shift.HalfShift {
	return []shift.HalfShift{
		{ID: "half-morning", Name: "Media mañana", StartTime: "08:00", EndTime: "12:00"},
	}
}

func TestAssignmentImpact_Franco(t *testing.T) {
	calc := NewCalculator(testShifts(), testHalfShifts())

	// Franco is one full day off regardless of config
	for _, config := range []settings.ScheduleConfig{
		defaultConfig(),
		{BreakMinutes: 60, MinHoursForBreak: 4, MaxDailyHours: 10, MonthStartDay: 15, WeekStartDay: 0},
	} {
		a := schedule.NewFranco()
		impact := calc.AssignmentImpact(a, []schedule.Assignment{a}, config)

		assert.Equal(t, 1.0, impact.Francos)
		assert.Zero(t, impact.NormalHours)
		assert.Zero(t, impact.OvertimeHours)
		assert.Zero(t, impact.LeaveHours)
		assert.Zero(t, impact.HalfDayHours)
		assert.False(t, impact.ContributesWork)
		assert.False(t, impact.ContributesLeave)
	}
}

func TestAssignmentImpact_MedioFranco(t *testing.T) {
	calc := NewCalculator(testShifts(), testHalfShifts())
	config := defaultConfig()

	t.Run("with explicit times", func(t *testing.T) {
		a := schedule.NewMedioFranco("08:00", "12:00")
		impact := calc.AssignmentImpact(a, []schedule.Assignment{a}, config)

		assert.Equal(t, 0.5, impact.Francos)
		assert.Equal(t, 4.0, impact.HalfDayHours)
		// Half-day worked hours count as normal hours, never overtime
		assert.Equal(t, 4.0, impact.NormalHours)
		assert.Zero(t, impact.OvertimeHours)
		assert.True(t, impact.ContributesWork)
	})

	t.Run("without times still registers half a day off", func(t *testing.T) {
		a := schedule.NewMedioFranco("", "")
		impact := calc.AssignmentImpact(a, []schedule.Assignment{a}, config)

		assert.Equal(t, 0.5, impact.Francos)
		assert.Zero(t, impact.HalfDayHours)
		assert.Zero(t, impact.NormalHours)
		assert.False(t, impact.ContributesWork)
	})

	t.Run("template reference resolves like a shift reference", func(t *testing.T) {
		a := schedule.NewMedioFranco("", "")
		a.HalfShiftID = "half-morning"
		impact := calc.AssignmentImpact(a, []schedule.Assignment{a}, config)

		assert.Equal(t, 0.5, impact.Francos)
		assert.Equal(t, 4.0, impact.HalfDayHours)
		assert.True(t, impact.ContributesWork)
	})
}

func TestAssignmentImpact_Licencia(t *testing.T) {
	calc := NewCalculator(testShifts(), testHalfShifts())
	config := defaultConfig()

	a := schedule.NewLicencia("09:00", "13:00")
	impact := calc.AssignmentImpact(a, []schedule.Assignment{a}, config)

	assert.Equal(t, 4.0, impact.LeaveHours)
	assert.Zero(t, impact.NormalHours)
	assert.Zero(t, impact.OvertimeHours)
	assert.Zero(t, impact.Francos)
	assert.True(t, impact.ContributesLeave)
	assert.False(t, impact.ContributesWork)
}

func TestAssignmentImpact_Nota(t *testing.T) {
	calc := NewCalculator(nil, nil)

	a := schedule.NewNota("cubre a Juan")
	impact := calc.AssignmentImpact(a, []schedule.Assignment{a}, defaultConfig())

	assert.Equal(t, stats.AssignmentImpact{}, impact)
}

func TestAssignmentImpact_UnknownKindIsNoOp(t *testing.T) {
	calc := NewCalculator(nil, nil)

	a := schedule.Assignment{Kind: "vacaciones_lunares"}
	assert.NotPanics(t, func() {
		impact := calc.AssignmentImpact(a, []schedule.Assignment{a}, defaultConfig())
		assert.Equal(t, stats.AssignmentImpact{}, impact)
	})
}

func TestResolveDayHours(t *testing.T) {
	calc := NewCalculator(testShifts(), testHalfShifts())

	t.Run("short day keeps full hours and no break", func(t *testing.T) {
		day := []schedule.Assignment{schedule.NewShiftAssignment("", "09:00", "13:00")}
		got := calc.ResolveDayHours(day, defaultConfig())

		assert.Equal(t, 4.0, got.NormalHours)
		assert.Zero(t, got.OvertimeHours)
		assert.Equal(t, 4.0, got.ComputableHours)
	})

	t.Run("nine hour day deducts one break then splits overtime", func(t *testing.T) {
		// 9h - 0.5h break = 8.5h -> 8 normal + 0.5 overtime
		day := []schedule.Assignment{schedule.NewShiftAssignment("", "08:00", "17:00")}
		got := calc.ResolveDayHours(day, defaultConfig())

		assert.InDelta(t, 8.0, got.NormalHours, 1e-9)
		assert.InDelta(t, 0.5, got.OvertimeHours, 1e-9)
		assert.InDelta(t, 8.5, got.ComputableHours, 1e-9)
	})

	t.Run("break applies once across multiple shifts", func(t *testing.T) {
		// Two 4.5h shifts: 9h total, one single break deduction
		day := []schedule.Assignment{
			schedule.NewShiftAssignment("", "08:00", "12:30"),
			schedule.NewShiftAssignment("", "16:00", "20:30"),
		}
		got := calc.ResolveDayHours(day, defaultConfig())

		assert.InDelta(t, 8.5, got.ComputableHours, 1e-9)
	})

	t.Run("night shift crossing midnight", func(t *testing.T) {
		day := []schedule.Assignment{schedule.NewShiftAssignment("night", "", "")}
		got := calc.ResolveDayHours(day, defaultConfig())

		// 22:00-06:00 is 8h; over the 6h threshold, so 0.5h break applies
		assert.InDelta(t, 7.5, got.ComputableHours, 1e-9)
	})

	t.Run("non-shift assignments are ignored", func(t *testing.T) {
		day := []schedule.Assignment{
			schedule.NewFranco(),
			schedule.NewLicencia("09:00", "13:00"),
		}
		got := calc.ResolveDayHours(day, defaultConfig())

		assert.Zero(t, got.ComputableHours)
	})
}

func TestShiftDuration_ResolvedFromCatalog(t *testing.T) {
	shifts := testShifts()
	calc := NewCalculator(shifts, nil)

	// 22:00-06:00 -> 480 minutes
	night := shifts[1]
	assert.Equal(t, 480, night.DurationMinutes())

	// Split shift resolves both blocks: 4h + 5h = 540 minutes
	split := shifts[2]
	assert.Equal(t, 540, split.DurationMinutes())
	require.Len(t, split.Intervals(), 2)

	// The calculator resolves referenced shifts to the same durations
	day := []schedule.Assignment{schedule.NewShiftAssignment("split", "", "")}
	got := calc.ResolveDayHours(day, settings.ScheduleConfig{
		BreakMinutes:     0,
		MinHoursForBreak: 24,
		MaxDailyHours:    24,
		MonthStartDay:    1,
		WeekStartDay:     1,
	})
	assert.InDelta(t, 9.0, got.ComputableHours, 1e-9)
}

func TestDayImpact_MixedDayDoesNotDoubleCount(t *testing.T) {
	calc := NewCalculator(testShifts(), testHalfShifts())
	config := defaultConfig()

	// Split shift stored as two shift assignments plus a note: worked
	// hours must be resolved once for the day, notes add nothing.
	day := []schedule.Assignment{
		schedule.NewShiftAssignment("", "08:00", "12:30"),
		schedule.NewShiftAssignment("", "16:00", "20:30"),
		schedule.NewNota("turno partido"),
	}
	impact := calc.DayImpact(day, config)

	assert.InDelta(t, 8.5, impact.NormalHours+impact.OvertimeHours, 1e-9)
	assert.True(t, impact.ContributesWork)

	// Half day off plus a partial shift as two assignments
	day = []schedule.Assignment{
		schedule.NewMedioFranco("", ""),
		schedule.NewShiftAssignment("", "14:00", "18:00"),
	}
	impact = calc.DayImpact(day, config)

	assert.Equal(t, 0.5, impact.Francos)
	assert.InDelta(t, 4.0, impact.NormalHours, 1e-9)
}
