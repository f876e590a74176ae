package employee

import (
	"github.com/turnolab/turnos-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName  string  `json:"full_name"`
	Position  *string `json:"position"`
	HireDate  *string `json:"hire_date"`
	SortOrder int     `json:"sort_order"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID        string  `json:"-"`
	FullName  *string `json:"full_name"`
	Position  *string `json:"position"`
	HireDate  *string `json:"hire_date"`
	Active    *bool   `json:"active"`
	SortOrder *int    `json:"sort_order"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Position  *string `json:"position,omitempty"`
	HireDate  *string `json:"hire_date,omitempty"`
	Active    bool    `json:"active"`
	SortOrder int     `json:"sort_order"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Position:  e.Position,
		Active:    e.Active,
		SortOrder: e.SortOrder,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.HireDate != nil {
		hd := e.HireDate.Format("2006-01-02")
		resp.HireDate = &hd
	}
	return resp
}
