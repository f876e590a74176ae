package main

import (
	"fmt"
	"net/http"

	"github.com/turnolab/turnos-backend-go/internal/config"
	appHTTP "github.com/turnolab/turnos-backend-go/internal/handler/http"
	"github.com/turnolab/turnos-backend-go/internal/pkg/database"
	"github.com/turnolab/turnos-backend-go/internal/pkg/jwt"
	"github.com/turnolab/turnos-backend-go/internal/repository/postgresql"
	authService "github.com/turnolab/turnos-backend-go/internal/service/auth"
	employeeService "github.com/turnolab/turnos-backend-go/internal/service/employee"
	masterService "github.com/turnolab/turnos-backend-go/internal/service/master"
	patternService "github.com/turnolab/turnos-backend-go/internal/service/pattern"
	scheduleService "github.com/turnolab/turnos-backend-go/internal/service/schedule"
	statsService "github.com/turnolab/turnos-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	halfShiftRepo := postgresql.NewHalfShiftRepository(db)
	configRepo := postgresql.NewScheduleConfigRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, companyRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	masterSvc := masterService.NewMasterService(shiftRepo, halfShiftRepo, configRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo)
	statsSvc := statsService.NewStatsService(scheduleRepo, employeeRepo, shiftRepo, halfShiftRepo, configRepo)
	patternSvc := patternService.NewPatternService(scheduleRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc, masterSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc, patternSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		masterHandler,
		scheduleHandler,
		statsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
