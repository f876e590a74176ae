package master

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/settings"
	"github.com/turnolab/turnos-backend-go/internal/domain/shift"
)

// MasterServiceImpl manages the per-company master data the scheduling
// engine reads: the shift catalog and the hour-computation settings. It
// satisfies both shift.ShiftService and settings.SettingsService.
type MasterServiceImpl struct {
	shiftRepo     shift.ShiftRepository
	halfShiftRepo shift.HalfShiftRepository
	configRepo    settings.ScheduleConfigRepository
}

func NewMasterService(
	shiftRepo shift.ShiftRepository,
	halfShiftRepo shift.HalfShiftRepository,
	configRepo settings.ScheduleConfigRepository,
) *MasterServiceImpl {
	return &MasterServiceImpl{
		shiftRepo:     shiftRepo,
		halfShiftRepo: halfShiftRepo,
		configRepo:    configRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *MasterServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// CreateShift implements shift.ShiftService. Shift names are unique per
// company, compared case-insensitively.
func (s *MasterServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}
	for _, sh := range existing {
		if strings.EqualFold(sh.Name, req.Name) {
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		CompanyID:  companyID,
		Name:       req.Name,
		Color:      req.Color,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		StartTime2: req.StartTime2,
		EndTime2:   req.EndTime2,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift.ToShiftResponse(created), nil
}

// ListShifts implements shift.ShiftService.
func (s *MasterServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	out := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		out = append(out, shift.ToShiftResponse(sh))
	}
	return out, nil
}

// UpdateShift implements shift.ShiftService.
func (s *MasterServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	updated, err := s.shiftRepo.Update(ctx, req, companyID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return shift.ToShiftResponse(updated), nil
}

// DeleteShift implements shift.ShiftService. Deletion is soft: schedules
// keep referencing the shift's times for historical hour computation.
func (s *MasterServiceImpl) DeleteShift(ctx context.Context, id string) error {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.shiftRepo.SoftDelete(ctx, id, companyID); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// CreateHalfShift implements shift.ShiftService.
func (s *MasterServiceImpl) CreateHalfShift(ctx context.Context, req shift.CreateHalfShiftRequest) (shift.HalfShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.HalfShiftResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.HalfShiftResponse{}, err
	}

	created, err := s.halfShiftRepo.Create(ctx, shift.HalfShift{
		CompanyID: companyID,
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return shift.HalfShiftResponse{}, fmt.Errorf("failed to create half shift: %w", err)
	}

	return shift.ToHalfShiftResponse(created), nil
}

// ListHalfShifts implements shift.ShiftService.
func (s *MasterServiceImpl) ListHalfShifts(ctx context.Context) ([]shift.HalfShiftResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	halfShifts, err := s.halfShiftRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list half shifts: %w", err)
	}

	out := make([]shift.HalfShiftResponse, 0, len(halfShifts))
	for _, h := range halfShifts {
		out = append(out, shift.ToHalfShiftResponse(h))
	}
	return out, nil
}

// UpdateHalfShift implements shift.ShiftService.
func (s *MasterServiceImpl) UpdateHalfShift(ctx context.Context, req shift.UpdateHalfShiftRequest) (shift.HalfShiftResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.HalfShiftResponse{}, err
	}

	updated, err := s.halfShiftRepo.Update(ctx, req, companyID)
	if err != nil {
		if errors.Is(err, shift.ErrHalfShiftNotFound) {
			return shift.HalfShiftResponse{}, shift.ErrHalfShiftNotFound
		}
		return shift.HalfShiftResponse{}, fmt.Errorf("failed to update half shift: %w", err)
	}

	return shift.ToHalfShiftResponse(updated), nil
}

// DeleteHalfShift implements shift.ShiftService.
func (s *MasterServiceImpl) DeleteHalfShift(ctx context.Context, id string) error {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.halfShiftRepo.SoftDelete(ctx, id, companyID); err != nil {
		if errors.Is(err, shift.ErrHalfShiftNotFound) {
			return shift.ErrHalfShiftNotFound
		}
		return fmt.Errorf("failed to delete half shift: %w", err)
	}
	return nil
}

// GetScheduleConfig implements settings.SettingsService. Companies without
// stored settings get the defaults.
func (s *MasterServiceImpl) GetScheduleConfig(ctx context.Context) (settings.ScheduleConfigResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return settings.ScheduleConfigResponse{}, err
	}

	config, err := s.configRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, settings.ErrScheduleConfigNotFound) {
			return settings.ToResponse(settings.DefaultScheduleConfig()), nil
		}
		return settings.ScheduleConfigResponse{}, fmt.Errorf("failed to load schedule configuration: %w", err)
	}

	return settings.ToResponse(config.Normalized()), nil
}

// UpdateScheduleConfig implements settings.SettingsService. Partial
// updates merge over the stored config, or over the defaults when nothing
// is stored yet.
func (s *MasterServiceImpl) UpdateScheduleConfig(ctx context.Context, req settings.UpdateScheduleConfigRequest) (settings.ScheduleConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.ScheduleConfigResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return settings.ScheduleConfigResponse{}, err
	}

	current, err := s.configRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, settings.ErrScheduleConfigNotFound) {
			return settings.ScheduleConfigResponse{}, fmt.Errorf("failed to load schedule configuration: %w", err)
		}
		current = settings.DefaultScheduleConfig()
		current.CompanyID = companyID
	}

	updated, err := s.configRepo.Upsert(ctx, req.Apply(current))
	if err != nil {
		return settings.ScheduleConfigResponse{}, fmt.Errorf("failed to save schedule configuration: %w", err)
	}

	return settings.ToResponse(updated.Normalized()), nil
}
