package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/turnolab/turnos-backend-go/internal/handler/http/middleware"
	"github.com/turnolab/turnos-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	scheduleHandler ScheduleHandler,
	statsHandler StatsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "turnos-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", masterHandler.ListShifts)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", masterHandler.CreateShift)
					r.Put("/{id}", masterHandler.UpdateShift)
					r.Delete("/{id}", masterHandler.DeleteShift)
				})
			})

			r.Route("/half-shifts", func(r chi.Router) {
				r.Get("/", masterHandler.ListHalfShifts)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", masterHandler.CreateHalfShift)
					r.Put("/{id}", masterHandler.UpdateHalfShift)
					r.Delete("/{id}", masterHandler.DeleteHalfShift)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/schedule", masterHandler.GetScheduleConfig)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Put("/schedule", masterHandler.UpdateScheduleConfig)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/{weekStart}", scheduleHandler.GetWeek)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Put("/{weekStart}/assignments", scheduleHandler.SetAssignments)
					r.Put("/{weekStart}/day-status", scheduleHandler.SetDayStatus)
					r.Put("/{weekStart}/completed", scheduleHandler.SetCompleted)
					r.Post("/{weekStart}/edit-session", scheduleHandler.BeginEditSession)
				})
			})

			r.Route("/edit-sessions", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Post("/{sessionID}/undo", scheduleHandler.Undo)
				r.Post("/{sessionID}/redo", scheduleHandler.Redo)
				r.Delete("/{sessionID}", scheduleHandler.EndEditSession)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/weekly/{weekStart}", statsHandler.WeeklyStats)
				r.Get("/monthly/{year}/{month}", statsHandler.MonthlyStats)
			})

			r.Get("/suggestions/{employeeID}", statsHandler.Suggestions)
		})
	})
	return r
}
