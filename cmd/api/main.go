package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/nizami-hq/nizami-backend-go/internal/config"
	appHTTP "github.com/nizami-hq/nizami-backend-go/internal/handler/http"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/cron"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/database"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/jwt"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/oauth"
	"github.com/nizami-hq/nizami-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nizami-hq/nizami-backend-go/internal/service/attendance"
	authService "github.com/nizami-hq/nizami-backend-go/internal/service/auth"
	dashboardService "github.com/nizami-hq/nizami-backend-go/internal/service/dashboard"
	employeeService "github.com/nizami-hq/nizami-backend-go/internal/service/employee"
	payrollService "github.com/nizami-hq/nizami-backend-go/internal/service/payroll"
	settingsService "github.com/nizami-hq/nizami-backend-go/internal/service/settings"
	transactionService "github.com/nizami-hq/nizami-backend-go/internal/service/transaction"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid BUSINESS_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.GoogleEnabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	authSvc := authService.NewAuthService(userRepo, JWTService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(shiftRepo, employeeRepo, location)
	transactionSvc := transactionService.NewTransactionService(transactionRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, shiftRepo, transactionRepo, location)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, shiftRepo, payrollSvc, location)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(shiftRepo, employeeRepo, settingsRepo, location)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		JWTService:  JWTService,
		FrontendURL: cfg.App.FrontendURL,
		Env:         cfg.App.Env,

		Auth:        appHTTP.NewAuthHandler(JWTService, authSvc, cfg.App.FrontendURL),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Transaction: appHTTP.NewTransactionHandler(transactionSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Settings:    appHTTP.NewSettingsHandler(settingsSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
