package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of one calendar day in minutes.
const MinutesPerDay = 24 * 60

const dateLayout = "2006-01-02"

// TimeToMinutes parses a "HH:MM" clock string into a minute offset within
// [0, 1440). A bare "HH" is read as "HH:00". Empty or malformed input maps
// to 0: assignment times come from user-edited documents and a missing time
// must degrade to a zero-length block, not an error.
func TimeToMinutes(t string) int {
	t = strings.TrimSpace(t)
	if t == "" {
		return 0
	}

	parts := strings.SplitN(t, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0
	}

	minutes := 0
	if len(parts) == 2 {
		minutes, err = strconv.Atoi(parts[1])
		if err != nil || minutes < 0 || minutes > 59 {
			return 0
		}
	}

	return hours*60 + minutes
}

// NormalizeRange returns (start, end) with end pushed past 1440 when the
// range crosses midnight. end <= start is the single definition of
// "crosses midnight" used everywhere in the engine.
func NormalizeRange(startMin, endMin int) (int, int) {
	if endMin <= startMin {
		return startMin, endMin + MinutesPerDay
	}
	return startMin, endMin
}

// RangeDuration returns the duration in minutes of a clock range,
// accounting for midnight crossing. Always >= 0.
func RangeDuration(startMin, endMin int) int {
	s, e := NormalizeRange(startMin, endMin)
	return e - s
}

// CrossesMidnight reports whether a clock range wraps past midnight.
func CrossesMidnight(startMin, endMin int) bool {
	return endMin <= startMin
}

// RangesOverlap reports whether two clock ranges overlap. Both ranges are
// normalized first; a wrapped range can overlap a same-day range through
// either its pre-midnight or post-midnight portion, so for each wrapped
// range the unwrapped variant (end - 1440) is tested as well. Symmetric:
// RangesOverlap(a, b) == RangesOverlap(b, a).
func RangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	as, ae := NormalizeRange(aStart, aEnd)
	bs, be := NormalizeRange(bStart, bEnd)

	if intervalsOverlap(as, ae, bs, be) {
		return true
	}
	if ae > MinutesPerDay && intervalsOverlap(as-MinutesPerDay, ae-MinutesPerDay, bs, be) {
		return true
	}
	if be > MinutesPerDay && intervalsOverlap(as, ae, bs-MinutesPerDay, be-MinutesPerDay) {
		return true
	}
	return false
}

func intervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// TimeInterval is one concrete block of a shift, in minute offsets.
type TimeInterval struct {
	Start           int  `json:"start"`
	End             int  `json:"end"`
	CrossesMidnight bool `json:"crosses_midnight"`
}

// Duration returns the interval length in minutes.
func (ti TimeInterval) Duration() int {
	return RangeDuration(ti.Start, ti.End)
}

// TimeBlock is a pair of "HH:MM" strings. A block is populated when both
// ends are non-empty.
type TimeBlock struct {
	StartTime string
	EndTime   string
}

// Populated reports whether both ends of the block are present.
func (b TimeBlock) Populated() bool {
	return strings.TrimSpace(b.StartTime) != "" && strings.TrimSpace(b.EndTime) != ""
}

// Interval converts a populated block into a TimeInterval.
func (b TimeBlock) Interval() TimeInterval {
	start := TimeToMinutes(b.StartTime)
	end := TimeToMinutes(b.EndTime)
	return TimeInterval{
		Start:           start,
		End:             end,
		CrossesMidnight: CrossesMidnight(start, end),
	}
}

// SplitIntervals returns one TimeInterval per populated block, in order.
// A shift with no populated blocks yields an empty slice.
func SplitIntervals(blocks ...TimeBlock) []TimeInterval {
	intervals := make([]TimeInterval, 0, len(blocks))
	for _, b := range blocks {
		if b.Populated() {
			intervals = append(intervals, b.Interval())
		}
	}
	return intervals
}

// BlocksDurationMinutes sums the durations of all populated blocks.
func BlocksDurationMinutes(blocks ...TimeBlock) int {
	total := 0
	for _, iv := range SplitIntervals(blocks...) {
		total += iv.Duration()
	}
	return total
}

// ParseDate parses a "YYYY-MM-DD" date string.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(dateLayout, dateStr)
}

// FormatDate formats a time as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
