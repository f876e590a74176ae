package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/turnolab/turnos-backend-go/internal/domain/schedule"
)

func weekWith(date, employeeID string, assignments ...domain.Assignment) domain.WeekAssignments {
	return domain.WeekAssignments{
		date: domain.DayAssignments{
			employeeID: assignments,
		},
	}
}

func TestHistory_SaveUndoRedoRoundTrip(t *testing.T) {
	h := NewHistory(0)

	initial := weekWith("2026-02-09", "e1", domain.NewShiftAssignment("shift-1", "", ""))
	edited := weekWith("2026-02-09", "e1", domain.NewFranco())

	h.SaveState("sched-1", initial, "session start")
	h.SaveState("sched-1", edited, "set franco")

	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	undone := h.Undo()
	require.NotNil(t, undone)
	assert.Equal(t, initial, undone.Assignments)
	assert.True(t, h.CanRedo())

	redone := h.Redo()
	require.NotNil(t, redone)
	assert.Equal(t, edited, redone.Assignments)
	assert.Equal(t, "set franco", redone.Description)
}

func TestHistory_UndoOnEmptyReturnsNil(t *testing.T) {
	h := NewHistory(0)

	assert.Nil(t, h.Undo())
	assert.Nil(t, h.Redo())

	h.SaveState("sched-1", domain.WeekAssignments{}, "session start")

	// A single snapshot has nothing underneath it.
	assert.Nil(t, h.Undo())
	assert.False(t, h.CanUndo())
}

func TestHistory_SaveClearsRedoStack(t *testing.T) {
	h := NewHistory(0)

	h.SaveState("sched-1", weekWith("2026-02-09", "e1", domain.NewFranco()), "a")
	h.SaveState("sched-1", weekWith("2026-02-09", "e1", domain.NewLicencia("", "")), "b")
	require.NotNil(t, h.Undo())
	assert.True(t, h.CanRedo())

	h.SaveState("sched-1", weekWith("2026-02-09", "e1", domain.NewNota("nota")), "c")

	assert.False(t, h.CanRedo())
	assert.Nil(t, h.Redo())
}

func TestHistory_EvictsOldestBeyondCapacity(t *testing.T) {
	h := NewHistory(2)

	states := []domain.WeekAssignments{
		weekWith("2026-02-09", "e1", domain.NewNota("first")),
		weekWith("2026-02-09", "e1", domain.NewNota("second")),
		weekWith("2026-02-09", "e1", domain.NewNota("third")),
		weekWith("2026-02-09", "e1", domain.NewNota("fourth")),
	}
	for _, s := range states {
		h.SaveState("sched-1", s, "edit")
	}

	// Capacity 2: only "third" and "second" remain undoable.
	require.NotNil(t, h.Undo())
	require.NotNil(t, h.Undo())
	assert.Nil(t, h.Undo())
}

func TestHistory_SnapshotsAreDeepCopies(t *testing.T) {
	h := NewHistory(0)

	live := weekWith("2026-02-09", "e1", domain.NewShiftAssignment("shift-1", "", ""))
	h.SaveState("sched-1", live, "session start")

	// Mutate the live document after snapshotting.
	live["2026-02-09"]["e1"][0] = domain.NewFranco()

	current := h.Current()
	require.NotNil(t, current)
	assert.Equal(t, domain.KindShift, current.Assignments["2026-02-09"]["e1"][0].Kind)
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(0)

	h.SaveState("sched-1", domain.WeekAssignments{}, "a")
	h.SaveState("sched-1", domain.WeekAssignments{}, "b")
	h.Clear()

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Nil(t, h.Current())
}
