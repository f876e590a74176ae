package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected int
	}{
		{"midnight", "00:00", 0},
		{"morning", "09:30", 570},
		{"last minute of day", "23:59", 1439},
		{"hour only", "14", 840},
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"garbage", "banana", 0},
		{"hour out of range", "25:00", 0},
		{"minute out of range", "10:75", 0},
		{"negative hour", "-1:00", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TimeToMinutes(tc.input))
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	// Same-day range is untouched
	s, e := NormalizeRange(540, 1020)
	assert.Equal(t, 540, s)
	assert.Equal(t, 1020, e)

	// end <= start means the range crosses midnight
	s, e = NormalizeRange(1320, 360)
	assert.Equal(t, 1320, s)
	assert.Equal(t, 360+MinutesPerDay, e)

	// Zero-length range wraps to a full day
	s, e = NormalizeRange(600, 600)
	assert.Equal(t, 600, s)
	assert.Equal(t, 600+MinutesPerDay, e)
}

func TestRangeDuration(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		expected   int
	}{
		{"regular day shift 09:00-17:00", 540, 1020, 480},
		{"night shift 22:00-06:00", 1320, 360, 480},
		{"one minute", 0, 1, 1},
		{"crossing at 23:59-00:01", 1439, 1, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RangeDuration(tc.start, tc.end)
			assert.Equal(t, tc.expected, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name                   string
		aStart, aEnd           int
		bStart, bEnd           int
		expected               bool
	}{
		{"disjoint same-day", 540, 720, 780, 900, false},
		{"touching endpoints do not overlap", 540, 720, 720, 900, false},
		{"nested same-day", 540, 1020, 600, 660, true},
		{"night shift vs early morning", TimeToMinutes("23:00"), TimeToMinutes("01:00"), TimeToMinutes("00:30"), TimeToMinutes("02:00"), true},
		{"night shift vs late evening", TimeToMinutes("22:00"), TimeToMinutes("06:00"), TimeToMinutes("21:00"), TimeToMinutes("23:00"), true},
		{"night shift vs midday", TimeToMinutes("22:00"), TimeToMinutes("06:00"), TimeToMinutes("10:00"), TimeToMinutes("14:00"), false},
		{"two night shifts", TimeToMinutes("22:00"), TimeToMinutes("04:00"), TimeToMinutes("23:30"), TimeToMinutes("05:00"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Symmetry must hold for every input
			assert.Equal(t,
				RangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd),
				RangesOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd),
			)
		})
	}
}

func TestSplitIntervals(t *testing.T) {
	// Split shift with two blocks
	intervals := SplitIntervals(
		TimeBlock{StartTime: "09:00", EndTime: "13:00"},
		TimeBlock{StartTime: "17:00", EndTime: "21:00"},
	)
	assert.Len(t, intervals, 2)
	assert.Equal(t, 240, intervals[0].Duration())
	assert.False(t, intervals[0].CrossesMidnight)

	// Second block missing
	intervals = SplitIntervals(
		TimeBlock{StartTime: "22:00", EndTime: "06:00"},
		TimeBlock{},
	)
	assert.Len(t, intervals, 1)
	assert.True(t, intervals[0].CrossesMidnight)

	// No blocks at all
	assert.Empty(t, SplitIntervals(TimeBlock{}, TimeBlock{StartTime: "09:00"}))
}

func TestBlocksDurationMinutes(t *testing.T) {
	// Overnight shift 22:00-06:00 is exactly 8 hours
	assert.Equal(t, 480, BlocksDurationMinutes(TimeBlock{StartTime: "22:00", EndTime: "06:00"}))

	// Split shift sums both blocks
	total := BlocksDurationMinutes(
		TimeBlock{StartTime: "08:00", EndTime: "12:00"},
		TimeBlock{StartTime: "16:00", EndTime: "20:00"},
	)
	assert.Equal(t, 480, total)

	assert.Equal(t, 0, BlocksDurationMinutes(TimeBlock{}))
}
