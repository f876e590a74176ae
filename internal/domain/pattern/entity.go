package pattern

import (
	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
)

// Suggestion is the most frequent non-empty assignment shape observed for
// one (employee, day-of-week) over the mined window. Purely advisory: the
// caller decides whether to apply it; the engine never mutates a schedule.
type Suggestion struct {
	DayOfWeek   int                   `json:"day_of_week"` // 0=Sunday .. 6=Saturday
	Assignments []schedule.Assignment `json:"assignments"`
	Confidence  float64               `json:"confidence"` // occurrences / weeks scanned, in (0, 1]
}
