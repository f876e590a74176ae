package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/turnolab/turnos-backend-go/internal/domain/auth"
	"github.com/turnolab/turnos-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token is missing, invalid,
// or not an access token. A refresh token must never reach an API
// handler; it is only accepted by the auth endpoints via cookie.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if companyID, _ := claims["company_id"].(string); companyID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
