package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/storeops-backend-go/internal/config"
	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/timelog"
	appHTTP "github.com/cmlabs-hris/storeops-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/eventbus"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/storeops-backend-go/internal/repository/postgresql"
	employeeService "github.com/cmlabs-hris/storeops-backend-go/internal/service/employee"
	payrollService "github.com/cmlabs-hris/storeops-backend-go/internal/service/payroll"
	reportService "github.com/cmlabs-hris/storeops-backend-go/internal/service/report"
	saleService "github.com/cmlabs-hris/storeops-backend-go/internal/service/sale"
	scheduleService "github.com/cmlabs-hris/storeops-backend-go/internal/service/schedule"
	timeLogService "github.com/cmlabs-hris/storeops-backend-go/internal/service/timelog"
	trafficService "github.com/cmlabs-hris/storeops-backend-go/internal/service/traffic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.App.LogLevel),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	timeLogRepo := postgresql.NewTimeLogRepository(db)
	saleRepo := postgresql.NewSaleRepository(db)
	trafficRepo := postgresql.NewTrafficRepository(db)

	// Without Redis, clock events reconcile inline
	var publisher timelog.Publisher
	var bus *eventbus.RedisBus
	if cfg.Redis.Enabled {
		redisBus, cleanup, err := eventbus.NewRedisBus(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Error("Error connecting to Redis", "error", err)
			os.Exit(1)
		}
		defer cleanup()
		bus = redisBus
		publisher = redisBus
	}

	loc := cfg.Location()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo)
	timeLogSvc := timeLogService.NewTimeLogService(timeLogRepo, scheduleRepo, employeeRepo, publisher, loc)
	saleSvc := saleService.NewSaleService(saleRepo)
	trafficSvc := trafficService.NewTrafficService(trafficRepo)
	payrollSvc := payrollService.NewPayrollService(scheduleRepo, saleRepo, employeeRepo)
	reportSvc := reportService.NewReportService(scheduleRepo, saleRepo, trafficRepo)

	if bus != nil {
		if err := bus.Subscribe(ctx, timelog.EventChannel, timeLogService.NewEventHandler(timeLogSvc)); err != nil {
			slog.Error("Error subscribing to time log events", "error", err)
			os.Exit(1)
		}
	}

	scheduler := cron.NewScheduler(loc)
	jobs := cron.NewTimeLogJobs(timeLogSvc, cfg.Labor.ReconcileInterval, cfg.Labor.StaleEntryAfter)
	if err := jobs.RegisterJobs(scheduler); err != nil {
		slog.Error("Error registering jobs", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule: appHTTP.NewScheduleHandler(scheduleSvc),
		TimeLog:  appHTTP.NewTimeLogHandler(timeLogSvc),
		Sale:     appHTTP.NewSaleHandler(saleSvc),
		Traffic:  appHTTP.NewTrafficHandler(trafficSvc),
		Payroll:  appHTTP.NewPayrollHandler(payrollSvc),
		Report:   appHTTP.NewReportHandler(reportSvc),
	}, appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Env:            cfg.App.Env,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", loc.String(), "event_bus", cfg.Redis.Enabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
