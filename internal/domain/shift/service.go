package shift

import "context"

// ShiftService manages the shift catalog: full shifts and the half-shift
// templates referenced by medio franco assignments.
type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error

	CreateHalfShift(ctx context.Context, req CreateHalfShiftRequest) (HalfShiftResponse, error)
	ListHalfShifts(ctx context.Context) ([]HalfShiftResponse, error)
	UpdateHalfShift(ctx context.Context, req UpdateHalfShiftRequest) (HalfShiftResponse, error)
	DeleteHalfShift(ctx context.Context, id string) error
}
