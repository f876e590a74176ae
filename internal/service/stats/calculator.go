package stats

import (
	"log/slog"
	"math"

	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/domain/settings"
	"github.com/turnolab/turnos-backend-go/internal/domain/shift"
	"github.com/turnolab/turnos-backend-go/internal/domain/stats"
	"github.com/turnolab/turnos-backend-go/internal/pkg/timeutil"
)

// Calculator derives hour and day-off impacts from assignments. It is a
// pure computation over its inputs: construct it with the company's shift
// catalog and call it from anywhere, concurrently if needed.
type Calculator struct {
	shifts     map[string]shift.Shift
	halfShifts map[string]shift.HalfShift
}

func NewCalculator(shifts []shift.Shift, halfShifts []shift.HalfShift) *Calculator {
	c := &Calculator{
		shifts:     make(map[string]shift.Shift, len(shifts)),
		halfShifts: make(map[string]shift.HalfShift, len(halfShifts)),
	}
	for _, s := range shifts {
		c.shifts[s.ID] = s
	}
	for _, h := range halfShifts {
		c.halfShifts[h.ID] = h
	}
	return c
}

// shiftBlocks resolves the concrete time blocks of a shift assignment:
// explicit times win, otherwise the referenced Turno supplies them.
func (c *Calculator) shiftBlocks(a schedule.Assignment) []timeutil.TimeBlock {
	if a.HasTimes() {
		return a.Blocks()
	}
	if a.ShiftID != "" {
		if s, ok := c.shifts[a.ShiftID]; ok {
			return s.Blocks()
		}
	}
	return nil
}

// halfDayBlock resolves the worked block of a medio franco: explicit times
// win, otherwise the referenced MedioTurno template supplies them. A medio
// franco without either still registers half a day off but contributes
// zero hours; that asymmetry is a deliberate compatibility rule.
func (c *Calculator) halfDayBlock(a schedule.Assignment) (timeutil.TimeBlock, bool) {
	if a.HasTimes() {
		return a.Blocks()[0], true
	}
	if a.HalfShiftID != "" {
		if h, ok := c.halfShifts[a.HalfShiftID]; ok && h.Block().Populated() {
			return h.Block(), true
		}
	}
	return timeutil.TimeBlock{}, false
}

// ResolveDayHours computes the worked-hours split for one employee-day
// from all of that day's shift-type assignments. This is the single place
// where the normal/overtime boundary is decided:
//
//  1. sum worked minutes across every block of every shift assignment,
//  2. deduct the configured break once if the total crosses the threshold,
//  3. split against the daily ceiling.
func (c *Calculator) ResolveDayHours(dayAssignments []schedule.Assignment, config settings.ScheduleConfig) stats.DayHours {
	totalMinutes := 0
	for _, a := range dayAssignments {
		if a.Kind != schedule.KindShift {
			continue
		}
		totalMinutes += timeutil.BlocksDurationMinutes(c.shiftBlocks(a)...)
	}

	if float64(totalMinutes)/60 > config.MinHoursForBreak {
		totalMinutes -= config.BreakMinutes
		if totalMinutes < 0 {
			totalMinutes = 0
		}
	}

	hours := float64(totalMinutes) / 60
	normal := math.Min(hours, config.MaxDailyHours)

	return stats.DayHours{
		NormalHours:     normal,
		OvertimeHours:   hours - normal,
		ComputableHours: hours,
	}
}

// leaveHours computes licencia hours through the same total-and-break
// pipeline as worked shifts, without the normal/overtime split.
func (c *Calculator) leaveHours(a schedule.Assignment, config settings.ScheduleConfig) float64 {
	totalMinutes := timeutil.BlocksDurationMinutes(a.Blocks()...)
	if float64(totalMinutes)/60 > config.MinHoursForBreak {
		totalMinutes -= config.BreakMinutes
		if totalMinutes < 0 {
			totalMinutes = 0
		}
	}
	return float64(totalMinutes) / 60
}

// AssignmentImpact returns one assignment's contribution to the employee's
// totals. dayAssignments is the full ordered list of the same cell: shift
// impacts reuse the day-level split, so every shift assignment of a day
// reports the same resolved hours. Unknown kinds are a silent no-op.
func (c *Calculator) AssignmentImpact(a schedule.Assignment, dayAssignments []schedule.Assignment, config settings.ScheduleConfig) stats.AssignmentImpact {
	switch a.Kind {
	case schedule.KindFranco:
		return stats.AssignmentImpact{Francos: 1}

	case schedule.KindMedioFranco:
		impact := stats.AssignmentImpact{Francos: 0.5}
		if block, ok := c.halfDayBlock(a); ok {
			hours := float64(block.Interval().Duration()) / 60
			impact.HalfDayHours = hours
			impact.NormalHours = hours
			impact.ContributesWork = hours > 0
		}
		return impact

	case schedule.KindShift:
		day := c.ResolveDayHours(dayAssignments, config)
		return stats.AssignmentImpact{
			NormalHours:     day.NormalHours,
			OvertimeHours:   day.OvertimeHours,
			ContributesWork: day.ComputableHours > 0,
		}

	case schedule.KindLicencia:
		hours := c.leaveHours(a, config)
		return stats.AssignmentImpact{
			LeaveHours:       hours,
			ContributesLeave: hours > 0,
		}

	case schedule.KindNota:
		return stats.AssignmentImpact{}

	default:
		slog.Warn("unknown assignment kind, ignoring", "kind", string(a.Kind))
		return stats.AssignmentImpact{}
	}
}

// DayImpact merges one employee-day into a single impact. Worked shift
// hours are resolved once for the whole day (never once per shift
// assignment), so aggregating days never double-counts a split shift.
func (c *Calculator) DayImpact(dayAssignments []schedule.Assignment, config settings.ScheduleConfig) stats.AssignmentImpact {
	var merged stats.AssignmentImpact

	hasShift := false
	for _, a := range dayAssignments {
		if a.Kind == schedule.KindShift {
			hasShift = true
			continue
		}
		merged.Add(c.AssignmentImpact(a, dayAssignments, config))
	}

	if hasShift {
		day := c.ResolveDayHours(dayAssignments, config)
		merged.Add(stats.AssignmentImpact{
			NormalHours:     day.NormalHours,
			OvertimeHours:   day.OvertimeHours,
			ContributesWork: day.ComputableHours > 0,
		})
	}

	return merged
}
