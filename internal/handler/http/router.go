package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nizami-hq/nizami-backend-go/internal/handler/http/middleware"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	JWTService  jwt.Service
	FrontendURL string
	Env         string

	Auth        AuthHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Transaction TransactionHandler
	Payroll     PayrollHandler
	Settings    SettingsHandler
	Dashboard   DashboardHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nizami-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
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
			r.Post("/register", cfg.Auth.Register)
			r.Post("/login", cfg.Auth.Login)
			r.Post("/refresh", cfg.Auth.RefreshToken)
			r.Post("/logout", cfg.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", cfg.Auth.LoginWithGoogle)
				r.Route("/callback", func(r chi.Router) {
					r.Get("/google", cfg.Auth.OAuthCallbackGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))

			// The portal toggle is the only route the kiosk role reaches.
			r.Post("/attendance/toggle", cfg.Attendance.Toggle)

			// Owner only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOwner)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", cfg.Employee.List)
					r.Post("/", cfg.Employee.Create)
					r.Get("/{id}", cfg.Employee.GetByID)
					r.Put("/{id}", cfg.Employee.Update)
					r.Delete("/{id}", cfg.Employee.Delete)
					r.Get("/{employeeID}/transactions", cfg.Transaction.ListByEmployee)
					r.Get("/{employeeID}/payroll", cfg.Payroll.EmployeeSummary)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", cfg.Attendance.ListShifts)
					r.Delete("/{id}", cfg.Attendance.DeleteShift)
				})

				r.Route("/transactions", func(r chi.Router) {
					r.Post("/", cfg.Transaction.Create)
					r.Delete("/{id}", cfg.Transaction.Delete)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/cycle", cfg.Payroll.GetCycle)
					r.Get("/summary", cfg.Payroll.Summaries)
					r.Get("/report.pdf", cfg.Payroll.Report)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", cfg.Settings.Get)
					r.Put("/", cfg.Settings.Update)
				})

				r.Get("/dashboard/stats", cfg.Dashboard.Stats)
			})
		})
	})
	return r
}
