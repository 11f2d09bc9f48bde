package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/storeops-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Employee EmployeeHandler
	Schedule ScheduleHandler
	TimeLog  TimeLogHandler
	Sale     SaleHandler
	Traffic  TrafficHandler
	Payroll  PayrollHandler
	Report   ReportHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	Env            string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "storeops"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", h.Employee.GetEmployee)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/{id}", h.Employee.UpsertEmployee)
				})
			})

			r.Route("/stores/{storeID}", func(r chi.Router) {
				r.Use(middleware.RequireStoreAccess)

				r.Get("/employees", h.Employee.ListStoreEmployees)

				// Time clock
				r.Post("/clock-in", h.TimeLog.ClockIn)
				r.Post("/clock-out", h.TimeLog.ClockOut)

				r.Post("/sales", h.Sale.CreateSale)
				r.Post("/returns", h.Sale.CreateReturn)
				r.Put("/traffic", h.Traffic.RecordCount)

				r.Route("/weeks/{year}/{week}", func(r chi.Router) {
					r.Route("/schedule", func(r chi.Router) {
						r.Get("/", h.Schedule.GetSchedule)
						r.Post("/rows", h.Schedule.AddRow)
						r.Patch("/rows/{rowID}", h.Schedule.UpdateRow)
						r.Put("/rows/{rowID}/actual-hours", h.Schedule.UpdateActualHours)

						// Manager only
						r.Group(func(r chi.Router) {
							r.Use(middleware.RequireManager)
							r.Put("/rows/{rowID}/actual-hours/override", h.Schedule.OverrideActualHours)
							r.Post("/lock", h.Schedule.Lock)
							r.Delete("/lock", h.Schedule.Unlock)
						})
					})

					r.Get("/time-logs", h.TimeLog.ListEntries)
					r.Get("/sales", h.Sale.ListSales)
					r.Get("/traffic", h.Traffic.GetStoreTraffic)
					r.Get("/report", h.Report.GetStoreReport)

					// Manager only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/time-logs/reconcile", h.TimeLog.Reconcile)
						r.Get("/payroll", h.Payroll.GetWeeklyPayroll)
					})
				})
			})
		})
	})
	return r
}
