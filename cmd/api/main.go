package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mvaldes-dev/portfolio-api/internal/config"
	"github.com/mvaldes-dev/portfolio-api/internal/database"
	"github.com/mvaldes-dev/portfolio-api/internal/handler"
	"github.com/mvaldes-dev/portfolio-api/internal/mailer"
	"github.com/mvaldes-dev/portfolio-api/internal/middleware"
	"github.com/mvaldes-dev/portfolio-api/internal/models"
	"github.com/mvaldes-dev/portfolio-api/internal/repository"
	"github.com/mvaldes-dev/portfolio-api/internal/router"
	"github.com/mvaldes-dev/portfolio-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error().Err(err).Msg("failed to close database pool")
		}
	}()

	if err := db.AutoMigrate(&models.ContactMessage{}, &models.StatusCheck{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	notifier := mailer.NewSMTPNotifier(mailer.Config{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUser,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.SMTPFromEmail,
		FromName:  cfg.SMTPFromName,
		Timeout:   cfg.MailTimeout,
	}, logger)

	validate := validator.New(validator.WithRequiredStructEnabled())

	contactRepo := repository.NewContactRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	contactService := service.NewContactService(contactRepo, redisClient, validate, notifier, cfg.ListCacheTTL, logger)
	statusService := service.NewStatusService(statusRepo, validate, logger)

	contactHandler := handler.NewContactHandler(contactService, logger)
	statusHandler := handler.NewStatusHandler(statusService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{
		Logger:         &logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	router.Register(app, cfg, router.Dependencies{
		ContactHandler: contactHandler,
		StatusHandler:  statusHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
