package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest, companyID string) (Employee, error)
	SoftDelete(ctx context.Context, id string, companyID string) error
}
