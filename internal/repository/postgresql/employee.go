package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/employee"
	"github.com/turnolab/turnos-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (company_id, full_name, position, hire_date, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, company_id, full_name, position, hire_date, active, sort_order, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.CompanyID, newEmployee.FullName, newEmployee.Position,
		newEmployee.HireDate, newEmployee.Active, newEmployee.SortOrder,
	).Scan(
		&created.ID, &created.CompanyID, &created.FullName, &created.Position,
		&created.HireDate, &created.Active, &created.SortOrder, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, full_name, position, hire_date, active, sort_order, created_at, updated_at
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID, &found.CompanyID, &found.FullName, &found.Position,
		&found.HireDate, &found.Active, &found.SortOrder, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return found, nil
}

// GetByCompanyID implements employee.EmployeeRepository. Rows come back in
// roster order.
func (e *employeeRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, full_name, position, hire_date, active, sort_order, created_at, updated_at
		FROM employees
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY sort_order, full_name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.CompanyID, &emp.FullName, &emp.Position,
			&emp.HireDate, &emp.Active, &emp.SortOrder, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	updates := make(map[string]interface{})

	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.HireDate != nil {
		if *req.HireDate == "" {
			updates["hire_date"] = nil
		} else {
			hireDate, err := time.Parse("2006-01-02", *req.HireDate)
			if err != nil {
				return employee.Employee{}, fmt.Errorf("failed to parse hire date: %w", err)
			}
			updates["hire_date"] = hireDate
		}
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) == 0 {
		return e.GetByID(ctx, req.ID, companyID)
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	query := "UPDATE employees SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL", i, i+1) +
		" RETURNING id, company_id, full_name, position, hire_date, active, sort_order, created_at, updated_at"
	args = append(args, req.ID, companyID)

	var updated employee.Employee
	err := q.QueryRow(ctx, query, args...).Scan(
		&updated.ID, &updated.CompanyID, &updated.FullName, &updated.Position,
		&updated.HireDate, &updated.Active, &updated.SortOrder, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id, companyID).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
