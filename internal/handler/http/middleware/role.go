package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/auth"
	"github.com/turnolab/turnos-backend-go/internal/domain/user"
	"github.com/turnolab/turnos-backend-go/internal/handler/http/response"
)

// ManagerOnly gates the endpoints that mutate schedules and master data.
// Owners pass too; viewers are read-only.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		switch user.Role(role) {
		case user.RoleOwner, user.RoleManager:
			next.ServeHTTP(w, r)
		default:
			response.HandleError(w, user.ErrManagerRoleRequired)
		}
	})
}

// OwnerOnly gates company-level settings.
func OwnerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleOwner {
			response.HandleError(w, user.ErrOwnerPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
