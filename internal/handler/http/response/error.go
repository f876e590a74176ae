package response

import (
	"errors"
	"net/http"

	"github.com/turnolab/turnos-backend-go/internal/domain/auth"
	"github.com/turnolab/turnos-backend-go/internal/domain/company"
	"github.com/turnolab/turnos-backend-go/internal/domain/employee"
	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/domain/shift"
	"github.com/turnolab/turnos-backend-go/internal/domain/user"
	"github.com/turnolab/turnos-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerRoleRequired):
		Forbidden(w, "Manager role required")
	case errors.Is(err, user.ErrOwnerPrivilegeRequired):
		Forbidden(w, "Owner privilege required")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound), errors.Is(err, auth.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyUsernameExists):
		Conflict(w, "Company username already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Shift catalog errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrHalfShiftNotFound):
		NotFound(w, "Half shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrEditSessionNotFound):
		NotFound(w, "Edit session not found")
	case errors.Is(err, schedule.ErrInvalidWeekStart):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrDateOutsideWeek):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
