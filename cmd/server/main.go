package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/visionx-optics/visionx-server/internal/ai"
	"github.com/visionx-optics/visionx-server/internal/config"
	"github.com/visionx-optics/visionx-server/internal/db"
	"github.com/visionx-optics/visionx-server/internal/events"
	"github.com/visionx-optics/visionx-server/internal/httpserver"
	"github.com/visionx-optics/visionx-server/internal/logging"
	mwlog "github.com/visionx-optics/visionx-server/internal/middleware/logging"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/search"
	"github.com/visionx-optics/visionx-server/internal/seed"
	"github.com/visionx-optics/visionx-server/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(config.EnvDefault("LOG_LEVEL", "info")).With(
		"service", cfg.ServiceName,
		"env", cfg.Env,
	)

	initCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		cancel()
		log.Fatalf("db migrate: %v", err)
	}

	r := repo.New(gdb)

	if err := seed.EnsureAdmin(initCtx, r, cfg.AdminEmail, cfg.AdminPassword, logger); err != nil {
		cancel()
		log.Fatalf("seed admin: %v", err)
	}
	if cfg.Env != "production" {
		if err := seed.Demo(initCtx, r, logger); err != nil {
			logger.Warn("demo_seed_failed", "error", err)
		}
	}
	cancel()

	aiClient, err := ai.NewClient(ai.Config{
		BaseURL: cfg.AIBaseURL,
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIModel,
	}, logger)
	if err != nil {
		log.Fatalf("ai client: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if producer != nil {
		defer producer.Close()
	}

	var esClient *search.Client
	if cfg.ESURL != "" {
		esClient, err = search.NewClient(search.Config{
			URL:      cfg.ESURL,
			Username: cfg.ESUser,
			Password: cfg.ESPassword,
			Index:    cfg.ESIndex,
		})
		if err != nil {
			logger.Warn("es_unavailable", "error", err)
			esClient = nil
		}
	}

	activitySvc := &service.ActivityService{Repo: r, Producer: producer}

	deps := &httpserver.Deps{
		Auth:          &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret}},
		Customers:     &httpserver.CustomerHTTP{Svc: &service.CustomerService{Repo: r}, Activity: activitySvc},
		Inventory:     &httpserver.InventoryHTTP{Svc: &service.InventoryService{Repo: r, Search: esClient}, Activity: activitySvc},
		Appointments:  &httpserver.AppointmentHTTP{Svc: &service.AppointmentService{Repo: r, StrictTransitions: cfg.StrictAppointmentFlow}, Activity: activitySvc},
		EyeTests:      &httpserver.EyeTestHTTP{Svc: &service.EyeTestService{Repo: r, AI: aiClient}, Activity: activitySvc},
		Prescriptions: &httpserver.PrescriptionHTTP{Svc: &service.PrescriptionService{Repo: r}, Activity: activitySvc},
		Patient:       &httpserver.PatientHTTP{Svc: &service.PatientService{Repo: r}},
		Cart:          &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}},
		Billing:       &httpserver.BillingHTTP{Svc: &service.BillingService{Repo: r}, Activity: activitySvc},
		Notifications: &httpserver.NotificationHTTP{Svc: &service.NotificationService{Repo: r}},
		Analytics:     &httpserver.AnalyticsHTTP{Svc: &service.AnalyticsService{Repo: r}},
		Activity:      &httpserver.ActivityHTTP{Svc: activitySvc},
		Chat:          &httpserver.ChatHTTP{Svc: &service.ChatService{AI: aiClient}},
		Uploads:       &httpserver.UploadHTTP{Dir: cfg.UploadDir},
		JWTSecret:     cfg.JWTSecret,
	}

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 30 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mwlog.RequestLogger(logger))

	httpserver.Register(e, deps)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		logger.Info("server_starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("server_stopping")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", "error", err)
	}

	sqlDB, err := gdb.DB()
	if err == nil {
		sqlDB.Close()
	}

	logger.Info("server_stopped")
}
