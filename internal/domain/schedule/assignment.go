package schedule

import (
	"strings"

	"github.com/turnolab/turnos-backend-go/internal/pkg/validator"
)

// AssignmentInput is the loosely-typed shape accepted at the API boundary.
// Legacy clients send bare kind strings ("franco") or partially-populated
// objects; NormalizeAssignment is the single place that turns either form
// into a well-formed Assignment.
type AssignmentInput struct {
	Kind        string `json:"kind"`
	ShiftID     string `json:"shift_id"`
	HalfShiftID string `json:"half_shift_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	StartTime2  string `json:"start_time_2"`
	EndTime2    string `json:"end_time_2"`
	Note        string `json:"note"`
}

// NormalizeAssignment maps loose external input into the tagged union,
// keeping only the fields meaningful for the resolved kind. Unrecognized
// kinds fail validation here so the engine never sees them; the engine
// itself still treats an unknown kind as a zero-impact no-op.
func NormalizeAssignment(in AssignmentInput) (Assignment, error) {
	kind := AssignmentKind(strings.ToLower(strings.TrimSpace(in.Kind)))

	var errs validator.ValidationErrors
	if !validator.IsInSlice(string(kind), AssignmentKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: " + strings.Join(AssignmentKindValues, ", "),
		})
		return Assignment{}, errs
	}

	checkTime := func(field, value string) {
		if value != "" && !validator.IsValidClockTime(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid HH:MM time",
			})
		}
	}

	var out Assignment
	switch kind {
	case KindShift:
		checkTime("start_time", in.StartTime)
		checkTime("end_time", in.EndTime)
		checkTime("start_time_2", in.StartTime2)
		checkTime("end_time_2", in.EndTime2)
		if (in.StartTime == "") != (in.EndTime == "") {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "shift times require both start_time and end_time",
			})
		}
		if in.StartTime2 != "" || in.EndTime2 != "" {
			if in.StartTime == "" {
				errs = append(errs, validator.ValidationError{
					Field:   "start_time_2",
					Message: "a second block requires the first block to be present",
				})
			}
			if (in.StartTime2 == "") != (in.EndTime2 == "") {
				errs = append(errs, validator.ValidationError{
					Field:   "start_time_2",
					Message: "second block requires both start_time_2 and end_time_2",
				})
			}
		}
		if in.ShiftID == "" && in.StartTime == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_id",
				Message: "a shift assignment needs a shift_id or explicit times",
			})
		}
		out = NewSplitShiftAssignment(in.ShiftID, in.StartTime, in.EndTime, in.StartTime2, in.EndTime2)

	case KindFranco:
		out = NewFranco()

	case KindMedioFranco:
		checkTime("start_time", in.StartTime)
		checkTime("end_time", in.EndTime)
		if (in.StartTime == "") != (in.EndTime == "") {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "medio franco times require both start_time and end_time",
			})
		}
		out = NewMedioFranco(in.StartTime, in.EndTime)
		out.HalfShiftID = in.HalfShiftID

	case KindLicencia:
		checkTime("start_time", in.StartTime)
		checkTime("end_time", in.EndTime)
		if (in.StartTime == "") != (in.EndTime == "") {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "licencia times require both start_time and end_time",
			})
		}
		out = NewLicencia(in.StartTime, in.EndTime)

	case KindNota:
		if validator.IsEmpty(in.Note) {
			errs = append(errs, validator.ValidationError{
				Field:   "note",
				Message: "note text is required",
			})
		}
		out = NewNota(in.Note)
	}

	if len(errs) > 0 {
		return Assignment{}, errs
	}

	return out, nil
}

// NormalizeAssignments normalizes an ordered list for one cell.
func NormalizeAssignments(inputs []AssignmentInput) ([]Assignment, error) {
	out := make([]Assignment, 0, len(inputs))
	for _, in := range inputs {
		a, err := NormalizeAssignment(in)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
