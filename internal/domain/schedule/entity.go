package schedule

import (
	"time"

	"github.com/turnolab/turnos-backend-go/internal/pkg/timeutil"
)

// AssignmentKind tags the variant of an Assignment.
type AssignmentKind string

const (
	KindShift       AssignmentKind = "shift"        // a worked shift (Turno)
	KindFranco      AssignmentKind = "franco"       // full day off
	KindMedioFranco AssignmentKind = "medio_franco" // half day off
	KindLicencia    AssignmentKind = "licencia"     // approved leave
	KindNota        AssignmentKind = "nota"         // free-text annotation
)

var AssignmentKindValues = []string{
	string(KindShift),
	string(KindFranco),
	string(KindMedioFranco),
	string(KindLicencia),
	string(KindNota),
}

// Assignment is one tagged value attached to a (date, employee) cell.
// Exactly the fields relevant to its Kind are populated; construct values
// through the New* constructors or NormalizeAssignment so that invariant
// holds. Time fields are "HH:MM" strings; the second block is present only
// when the first block is too.
type Assignment struct {
	Kind        AssignmentKind `json:"kind"`
	ShiftID     string         `json:"shift_id,omitempty"`      // shift: optional Turno reference
	HalfShiftID string         `json:"half_shift_id,omitempty"` // medio_franco: optional MedioTurno template
	StartTime   string         `json:"start_time,omitempty"`
	EndTime     string         `json:"end_time,omitempty"`
	StartTime2  string         `json:"start_time_2,omitempty"`
	EndTime2    string         `json:"end_time_2,omitempty"`
	Note        string         `json:"note,omitempty"` // nota: annotation text
}

// NewShiftAssignment builds a shift assignment with explicit times.
func NewShiftAssignment(shiftID, startTime, endTime string) Assignment {
	return Assignment{Kind: KindShift, ShiftID: shiftID, StartTime: startTime, EndTime: endTime}
}

// NewSplitShiftAssignment builds a shift assignment with two time blocks.
func NewSplitShiftAssignment(shiftID, startTime, endTime, startTime2, endTime2 string) Assignment {
	return Assignment{
		Kind:       KindShift,
		ShiftID:    shiftID,
		StartTime:  startTime,
		EndTime:    endTime,
		StartTime2: startTime2,
		EndTime2:   endTime2,
	}
}

// NewFranco builds a full day off.
func NewFranco() Assignment {
	return Assignment{Kind: KindFranco}
}

// NewMedioFranco builds a half day off. Times are optional; without them
// the half-day still counts half a franco but contributes zero hours.
func NewMedioFranco(startTime, endTime string) Assignment {
	return Assignment{Kind: KindMedioFranco, StartTime: startTime, EndTime: endTime}
}

// NewLicencia builds an approved-leave assignment.
func NewLicencia(startTime, endTime string) Assignment {
	return Assignment{Kind: KindLicencia, StartTime: startTime, EndTime: endTime}
}

// NewNota builds a free-text annotation with no numeric impact.
func NewNota(text string) Assignment {
	return Assignment{Kind: KindNota, Note: text}
}

// Blocks returns the assignment's populated time blocks in order. The
// second block is ignored unless the first one is populated.
func (a Assignment) Blocks() []timeutil.TimeBlock {
	var blocks []timeutil.TimeBlock
	first := timeutil.TimeBlock{StartTime: a.StartTime, EndTime: a.EndTime}
	if first.Populated() {
		blocks = append(blocks, first)
		second := timeutil.TimeBlock{StartTime: a.StartTime2, EndTime: a.EndTime2}
		if second.Populated() {
			blocks = append(blocks, second)
		}
	}
	return blocks
}

// HasTimes reports whether the assignment carries at least one complete
// time block of its own.
func (a Assignment) HasTimes() bool {
	return len(a.Blocks()) > 0
}

// DayAssignments maps employeeID to the ordered assignments of one date.
type DayAssignments map[string][]Assignment

// WeekAssignments maps "YYYY-MM-DD" dates to per-employee assignments.
type WeekAssignments map[string]DayAssignments

// Clone deep-copies the assignment map. Snapshots handed to the undo/redo
// history must never alias the live document.
func (w WeekAssignments) Clone() WeekAssignments {
	if w == nil {
		return nil
	}
	out := make(WeekAssignments, len(w))
	for date, day := range w {
		dayCopy := make(DayAssignments, len(day))
		for employeeID, assignments := range day {
			listCopy := make([]Assignment, len(assignments))
			copy(listCopy, assignments)
			dayCopy[employeeID] = listCopy
		}
		out[date] = dayCopy
	}
	return out
}

// Schedule (Horario) is one document per (company, week). It is created
// when a week is first edited and mutated on every assignment change; the
// engine never deletes it.
type Schedule struct {
	ID          string
	CompanyID   string
	WeekStart   string // "YYYY-MM-DD", first day of the week
	Assignments WeekAssignments
	DayStatus   map[string]string // date -> free-form status label
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssignmentsFor returns the ordered assignments of one (date, employee)
// cell; nil when the cell is empty.
func (s *Schedule) AssignmentsFor(date, employeeID string) []Assignment {
	if s.Assignments == nil {
		return nil
	}
	return s.Assignments[date][employeeID]
}

// SetAssignments replaces one cell's assignment list. An empty list clears
// the cell.
func (s *Schedule) SetAssignments(date, employeeID string, assignments []Assignment) {
	if s.Assignments == nil {
		s.Assignments = make(WeekAssignments)
	}
	day := s.Assignments[date]
	if day == nil {
		day = make(DayAssignments)
		s.Assignments[date] = day
	}
	if len(assignments) == 0 {
		delete(day, employeeID)
		if len(day) == 0 {
			delete(s.Assignments, date)
		}
		return
	}
	day[employeeID] = assignments
}

// UndoState is one snapshot of a schedule's assignment map taken during an
// editing session. Ownership is exclusive to that session and the snapshot
// is discarded when the session ends.
type UndoState struct {
	ScheduleID  string          `json:"schedule_id"`
	Assignments WeekAssignments `json:"assignments"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
}
