package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/employee"
	"github.com/turnolab/turnos-backend-go/internal/pkg/timeutil"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *EmployeeServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
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

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var hireDate *time.Time
	if req.HireDate != nil && *req.HireDate != "" {
		parsed, err := timeutil.ParseDate(*req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
		}
		hireDate = &parsed
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID: companyID,
		FullName:  req.FullName,
		Position:  req.Position,
		HireDate:  hireDate,
		Active:    true,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService. Employees come back in the
// roster order used by the schedule grid.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, employee.ToResponse(emp))
	}
	return out, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService. Deletion is soft: past
// schedules keep the employee's rows for historical stats.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.SoftDelete(ctx, id, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
