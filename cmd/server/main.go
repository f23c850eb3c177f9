package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	_ "github.com/lib/pq"

	"designdesk/config"
	_ "designdesk/docs"
	"designdesk/internal/adapters/auth"
	httpdelivery "designdesk/internal/delivery/http"
	"designdesk/internal/delivery/http/controllers"
	"designdesk/internal/delivery/http/middleware"
	"designdesk/internal/repository/postgres"
	"designdesk/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title DesignDesk API
// @version 1.0
// @description Appointment scheduling backend for design studios: slot proposals, conflict checking, and role-scoped calendars.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	apptRepo := postgres.NewAppointmentRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)

	signer := auth.NewJWTSigner(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(12)

	scheduleService := services.NewScheduleService(apptRepo, staffRepo, cfg.BusinessHours, serviceTimeout)
	authService := services.NewAuthService(staffRepo, hasher, signer, cfg.TokenExpiry, serviceTimeout)
	staffService := services.NewStaffService(staffRepo, serviceTimeout)
	customerService := services.NewCustomerService(customerRepo, serviceTimeout)
	sweeper := services.NewSweeperService(apptRepo, logger)

	scheduleController := controllers.NewScheduleController(logger, scheduleService)
	authController := controllers.NewAuthController(logger, authService)
	staffController := controllers.NewStaffController(logger, staffService)
	customerController := controllers.NewCustomerController(logger, customerService)

	mux := httpdelivery.NewRouter(scheduleController, authController, staffController, customerController, signer)

	var handler http.Handler = mux
	handler = middleware.Logging(logger, handler)
	handler = middleware.RequestID(handler)
	if len(cfg.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.AllowedOrigins, handler)
	}

	// Past appointments are marked completed in the background so the
	// calendar reflects reality without manual bookkeeping.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 15m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
		defer cancel()
		if err := sweeper.CompletePastAppointments(ctx); err != nil {
			logger.Error("completion sweep failed", "err", err)
		}
	}); err != nil {
		logger.Error("failed to schedule completion sweep", "err", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
