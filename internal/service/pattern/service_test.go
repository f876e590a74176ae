package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/pkg/timeutil"
)

// historyWeek builds one schedule document for the week starting at
// weekStart (a Monday) with the given per-weekday assignments for "e1".
func historyWeek(weekStart string, byWeekday map[time.Weekday][]schedule.Assignment) schedule.Schedule {
	start, _ := timeutil.ParseDate(weekStart)
	doc := schedule.Schedule{
		WeekStart:   weekStart,
		Assignments: make(schedule.WeekAssignments),
	}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		assignments, ok := byWeekday[day.Weekday()]
		if !ok {
			continue
		}
		doc.Assignments[timeutil.FormatDate(day)] = schedule.DayAssignments{
			"e1": assignments,
		}
	}
	return doc
}

func TestMineSuggestions_RecurringShapeWins(t *testing.T) {
	morning := []schedule.Assignment{schedule.NewShiftAssignment("morning", "", "")}
	night := []schedule.Assignment{schedule.NewShiftAssignment("night", "", "")}
	franco := []schedule.Assignment{schedule.NewFranco()}

	history := []schedule.Schedule{
		historyWeek("2026-02-09", map[time.Weekday][]schedule.Assignment{
			time.Monday: morning, time.Sunday: franco,
		}),
		historyWeek("2026-02-16", map[time.Weekday][]schedule.Assignment{
			time.Monday: morning, time.Sunday: franco,
		}),
		historyWeek("2026-02-23", map[time.Weekday][]schedule.Assignment{
			time.Monday: night, time.Sunday: franco,
		}),
	}

	suggestions := MineSuggestions(history, "e1")

	monday := suggestions[int(time.Monday)]
	require.Len(t, monday.Assignments, 1)
	assert.Equal(t, "morning", monday.Assignments[0].ShiftID)
	assert.InDelta(t, 2.0/3.0, monday.Confidence, 1e-9)

	sunday := suggestions[int(time.Sunday)]
	assert.Equal(t, schedule.KindFranco, sunday.Assignments[0].Kind)
	assert.InDelta(t, 1.0, sunday.Confidence, 1e-9)

	// Days without history produce no suggestion
	_, ok := suggestions[int(time.Wednesday)]
	assert.False(t, ok)
}

func TestMineSuggestions_TiePrefersMostRecent(t *testing.T) {
	morning := []schedule.Assignment{schedule.NewShiftAssignment("morning", "", "")}
	night := []schedule.Assignment{schedule.NewShiftAssignment("night", "", "")}

	history := []schedule.Schedule{
		historyWeek("2026-02-09", map[time.Weekday][]schedule.Assignment{time.Tuesday: morning}),
		historyWeek("2026-02-16", map[time.Weekday][]schedule.Assignment{time.Tuesday: night}),
	}

	suggestions := MineSuggestions(history, "e1")

	tuesday := suggestions[int(time.Tuesday)]
	require.Len(t, tuesday.Assignments, 1)
	assert.Equal(t, "night", tuesday.Assignments[0].ShiftID)
}

func TestMineSuggestions_EmptyHistory(t *testing.T) {
	assert.Empty(t, MineSuggestions(nil, "e1"))
	assert.Empty(t, MineSuggestions([]schedule.Schedule{}, "e1"))
}

func TestMineSuggestions_IgnoresOtherEmployees(t *testing.T) {
	doc := historyWeek("2026-02-09", map[time.Weekday][]schedule.Assignment{
		time.Friday: {schedule.NewFranco()},
	})

	assert.Empty(t, MineSuggestions([]schedule.Schedule{doc}, "someone-else"))
}

func TestMineSuggestions_SuggestionsDoNotAliasHistory(t *testing.T) {
	original := []schedule.Assignment{schedule.NewShiftAssignment("morning", "", "")}
	doc := historyWeek("2026-02-09", map[time.Weekday][]schedule.Assignment{time.Monday: original})

	suggestions := MineSuggestions([]schedule.Schedule{doc}, "e1")
	monday := suggestions[int(time.Monday)]
	monday.Assignments[0].ShiftID = "mutated"

	// The mined history must stay untouched
	start, _ := timeutil.ParseDate("2026-02-09")
	date := timeutil.FormatDate(start)
	assert.Equal(t, "morning", doc.Assignments[date]["e1"][0].ShiftID)
}
