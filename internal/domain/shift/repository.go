package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string, companyID string) (Shift, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest, companyID string) (Shift, error)
	SoftDelete(ctx context.Context, id string, companyID string) error
}

type HalfShiftRepository interface {
	Create(ctx context.Context, halfShift HalfShift) (HalfShift, error)
	GetByID(ctx context.Context, id string, companyID string) (HalfShift, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]HalfShift, error)
	Update(ctx context.Context, req UpdateHalfShiftRequest, companyID string) (HalfShift, error)
	SoftDelete(ctx context.Context, id string, companyID string) error
}
