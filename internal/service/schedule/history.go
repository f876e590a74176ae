package schedule

import (
	"time"

	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
)

// DefaultHistorySize bounds how many snapshots an editing session keeps.
const DefaultHistorySize = 50

// History is the bounded undo/redo manager for one editing session. It is
// caller-owned state, never shared between sessions: the schedule service
// creates one per edit session and discards it when the session ends.
//
// The current snapshot lives outside both stacks. SaveState moves the
// previous current onto the undo stack and clears the redo stack; Undo and
// Redo shuttle the current between the two stacks.
type History struct {
	maxSize   int
	undoStack []schedule.UndoState
	redoStack []schedule.UndoState
	current   *schedule.UndoState
}

func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultHistorySize
	}
	return &History{maxSize: maxSize}
}

// SaveState records a new snapshot as the current state. The assignments
// map is deep-copied so later edits to the live document cannot corrupt
// history. Any redoable states are discarded: editing forks the timeline.
func (h *History) SaveState(scheduleID string, assignments schedule.WeekAssignments, description string) {
	snapshot := schedule.UndoState{
		ScheduleID:  scheduleID,
		Assignments: assignments.Clone(),
		Timestamp:   time.Now(),
		Description: description,
	}

	if h.current != nil {
		h.undoStack = append(h.undoStack, *h.current)
		if len(h.undoStack) > h.maxSize {
			// Evict the oldest snapshot
			h.undoStack = h.undoStack[len(h.undoStack)-h.maxSize:]
		}
	}

	h.redoStack = nil
	h.current = &snapshot
}

// Undo steps back to the previous snapshot and returns it. Returns nil
// when there is nothing to undo; that is a terminal state, not an error.
func (h *History) Undo() *schedule.UndoState {
	if len(h.undoStack) == 0 {
		return nil
	}

	popped := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	if h.current != nil {
		h.redoStack = append(h.redoStack, *h.current)
	}
	h.current = &popped

	return &popped
}

// Redo steps forward to the next snapshot and returns it, or nil when
// there is nothing to redo.
func (h *History) Redo() *schedule.UndoState {
	if len(h.redoStack) == 0 {
		return nil
	}

	popped := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	if h.current != nil {
		h.undoStack = append(h.undoStack, *h.current)
	}
	h.current = &popped

	return &popped
}

// Clear empties both stacks and the current pointer. Used when the
// editing context switches to a different week or schedule.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.current = nil
}

// Current returns the active snapshot, or nil before the first SaveState.
func (h *History) Current() *schedule.UndoState {
	return h.current
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}
