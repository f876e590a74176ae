package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	GetByUsername(ctx context.Context, username string) (Company, error)
}
