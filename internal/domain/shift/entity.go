package shift

import (
	"time"

	"github.com/turnolab/turnos-backend-go/internal/pkg/timeutil"
)

// Shift (Turno) is a named, time-boxed work period. A shift may be split
// into two daily blocks (e.g. morning/evening); the second block is present
// only when both of its ends are set.
type Shift struct {
	ID         string
	CompanyID  string
	Name       string
	Color      string
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	StartTime2 string // optional second block
	EndTime2   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// Blocks returns the shift's time blocks in order. The second block is
// included only when populated.
func (s Shift) Blocks() []timeutil.TimeBlock {
	blocks := []timeutil.TimeBlock{{StartTime: s.StartTime, EndTime: s.EndTime}}
	second := timeutil.TimeBlock{StartTime: s.StartTime2, EndTime: s.EndTime2}
	if second.Populated() {
		blocks = append(blocks, second)
	}
	return blocks
}

// Intervals returns 0-2 concrete time intervals, one per populated block.
func (s Shift) Intervals() []timeutil.TimeInterval {
	return timeutil.SplitIntervals(s.Blocks()...)
}

// DurationMinutes is the total worked minutes across all blocks.
func (s Shift) DurationMinutes() int {
	return timeutil.BlocksDurationMinutes(s.Blocks()...)
}

// HalfShift (MedioTurno) is a named predefined time range usable as a
// template for a MedioFranco's worked half.
type HalfShift struct {
	ID        string
	CompanyID string
	Name      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Block returns the half shift's time range as a block.
func (h HalfShift) Block() timeutil.TimeBlock {
	return timeutil.TimeBlock{StartTime: h.StartTime, EndTime: h.EndTime}
}
