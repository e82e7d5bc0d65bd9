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

	"freight/api"
	"freight/cmd"
	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/kafka"
	"freight/internal/adapters/out/postgres/migrations"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = migrations.UpDSN(ctx, configs.DSN(), logger); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	publisher := newPublisher(configs, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := jobs.NewJobManager(app.CreateRejectStaleOffersCommandHandler(), configs.OfferSweepSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := newWebServer(&app, configs, logger)
	if err != nil {
		log.Fatalf("Error building web server: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Web server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("web server shutdown failed", "error", err)
	}
}

// newPublisher writes load events to kafka, or to the log when no broker is configured.
func newPublisher(configs cmd.Config, logger *slog.Logger) eventPublisher {
	if configs.KafkaHost == "" {
		logger.Warn("KAFKA_HOST is not set, load events are only logged")
		return kafka.NewLogPublisher(logger)
	}
	return kafka.NewPublisher(configs.KafkaHost, configs.KafkaLoadEventsTopic, logger)
}

func newWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validate, err := httpadapter.ValidateRequests(doc)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}
	if err = api.RegisterSwagger(); err != nil {
		return nil, fmt.Errorf("register swagger document: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(httpadapter.RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateLoad:            app.CreateCreateLoadCommandHandler(),
		RequestLoadTransition: app.CreateRequestLoadTransitionCommandHandler(),
		SubmitOffer:           app.CreateSubmitOfferCommandHandler(),
		ResolveOffer:          app.CreateResolveOfferCommandHandler(),
		PostChatMessage:       app.CreatePostChatMessageCommandHandler(),
		GetLoad:               app.CreateGetLoadQueryHandler(),
		ListPostedLoads:       app.CreateListPostedLoadsQueryHandler(),
		ListOffers:            app.CreateListOffersQueryHandler(),
		GetChatMessages:       app.CreateGetChatMessagesQueryHandler(),
	}, logger)

	parser := httpadapter.NewTokenParser(configs.JWTSecret)
	server.Register(e.Group("/api/v1", httpadapter.Authenticate(parser), validate))
	return e, nil
}
