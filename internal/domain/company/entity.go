package company

import "time"

// Company is the tenant: employees, shifts, and schedules are all scoped
// to one company.
type Company struct {
	ID        string
	Name      string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
