package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"portfolio-admin/internal/config"
	"portfolio-admin/internal/handler"
	"portfolio-admin/internal/httpserver"
	"portfolio-admin/internal/mqhandler"
	"portfolio-admin/internal/repository"
	"portfolio-admin/internal/service"
	"portfolio-admin/internal/service/auth"
	"portfolio-admin/pkg/db"
	"portfolio-admin/pkg/logger"
	"portfolio-admin/pkg/mq"
	"portfolio-admin/pkg/redis"
	"portfolio-admin/pkg/util"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting portfolio-admin...",
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("mq_url", cfg.MQ.URL),
	)

	// DB
	log.Info("Initializing database connection...")
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.Migrate(migrateCtx, dbConn); err != nil {
		migrateCancel()
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	migrateCancel()
	log.Info("Database connection established successfully")

	// Redis
	rdb := redis.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	// Repositories
	userRepo := repository.NewUserRepository(dbConn, log)
	experienceRepo := repository.NewExperienceRepository(dbConn, log)
	projectRepo := repository.NewProjectRepository(dbConn, log)
	testimonialRepo := repository.NewTestimonialRepository(dbConn, log)
	notificationRepo := repository.NewNotificationRepository(dbConn, log)

	// MQ publisher for testimonial lifecycle events
	log.Info("Initializing MQ publisher...")
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("Failed to init MQ publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Services
	authSvc := auth.NewService(userRepo, auth.NewRedisDenylist(rdb, log), cfg.JWT.Secret, log)
	experienceSvc := service.NewExperienceService(experienceRepo, log)
	projectSvc := service.NewProjectService(projectRepo, log)
	testimonialSvc := service.NewTestimonialService(testimonialRepo, publisher, log)
	uploader := service.NewMediaUploader(cfg.Media, log)
	analytics := service.NewAnalyticsClient(cfg.Analytics.URL, log)
	statsSvc := service.NewStatsService(experienceRepo, projectRepo, testimonialRepo, analytics, log)

	// MQ consumers feeding the notification feed
	deduper := util.NewDeduper(rdb, 24*time.Hour, log)
	retries := util.NewRetryCounter(rdb, time.Hour)
	submittedHandler := mqhandler.NewTestimonialSubmittedHandler(notificationRepo, deduper, retries, log)
	approvedHandler := mqhandler.NewTestimonialApprovedHandler(notificationRepo, deduper, retries, log)

	log.Info("Initializing MQ consumer for testimonial.submitted...",
		zap.String("queue", "testimonial.submitted.q"),
		zap.String("routing_key", "testimonial.submitted"),
	)
	submittedConsumer, err := mq.NewConsumer(cfg.MQ.URL, "testimonial.submitted.q", "testimonial.submitted", log)
	if err != nil {
		log.Fatal("Failed to init submitted consumer", zap.Error(err))
	}
	submittedConsumer.SetHandler(submittedHandler.Handle)
	go func() {
		if err := submittedConsumer.StartConsuming(); err != nil {
			log.Fatal("Submitted consumer failed", zap.Error(err))
		}
	}()
	log.Info("testimonial.submitted consumer started successfully")

	log.Info("Initializing MQ consumer for testimonial.approved...",
		zap.String("queue", "testimonial.approved.q"),
		zap.String("routing_key", "testimonial.approved"),
	)
	approvedConsumer, err := mq.NewConsumer(cfg.MQ.URL, "testimonial.approved.q", "testimonial.approved", log)
	if err != nil {
		log.Fatal("Failed to init approved consumer", zap.Error(err))
	}
	approvedConsumer.SetHandler(approvedHandler.Handle)
	go func() {
		if err := approvedConsumer.StartConsuming(); err != nil {
			log.Fatal("Approved consumer failed", zap.Error(err))
		}
	}()
	log.Info("testimonial.approved consumer started successfully")

	// HTTP server
	handlers := httpserver.Handlers{
		Auth:         handler.NewAuthHandler(authSvc, log),
		Experience:   handler.NewExperienceHandler(experienceSvc, log),
		Project:      handler.NewProjectHandler(projectSvc, log),
		Testimonial:  handler.NewTestimonialHandler(testimonialSvc, log),
		Upload:       handler.NewUploadHandler(uploader, log),
		Stats:        handler.NewStatsHandler(statsSvc, log),
		Notification: handler.NewNotificationHandler(notificationRepo, log),
	}
	router := httpserver.NewRouter(
		handlers,
		authSvc,
		cfg.JWT.Secret,
		dbConn,
		[]httpserver.Readiness{submittedConsumer, approvedConsumer},
		log,
	)

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router.Engine,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("portfolio-admin is fully initialized and running",
		zap.String("http_addr", addr),
		zap.String("mq_queue_submitted", "testimonial.submitted.q"),
		zap.String("mq_queue_approved", "testimonial.approved.q"),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down portfolio-admin gracefully...")

	log.Info("Stopping MQ consumers...")
	submittedConsumer.Stop()
	approvedConsumer.Stop()

	log.Info("Shutting down HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("portfolio-admin shutdown complete")
}
