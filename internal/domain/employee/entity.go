package employee

import "time"

type Employee struct {
	ID        string
	CompanyID string
	FullName  string
	Position  *string
	HireDate  *time.Time
	Active    bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
