package main

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/tidewatch/backend/internal/api"
	v1 "github.com/tidewatch/backend/internal/api/v1"
	apivalidator "github.com/tidewatch/backend/internal/api/validator"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/config"
	"github.com/tidewatch/backend/internal/database"
	middleware "github.com/tidewatch/backend/internal/error"
	"github.com/tidewatch/backend/internal/metrics"
	"github.com/tidewatch/backend/internal/publishers"
	"github.com/tidewatch/backend/internal/repository"
	"github.com/tidewatch/backend/internal/service"
	"github.com/tidewatch/backend/pkg/classifier"
	"github.com/tidewatch/backend/pkg/httpclient"
	"github.com/tidewatch/backend/pkg/mq"
	"github.com/tidewatch/backend/pkg/objectstore"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewRedisClient,
			NewMQConnection,
			NewMQPublisher,
			NewFiberApp,

			metrics.NewMetrics,
			NewValidate,
			NewXValidator,
			catalog.New,

			repository.NewUserRepository,
			repository.NewSightingRepository,
			repository.NewCleanupRepository,
			repository.NewCollectionRepository,
			repository.NewAquariumRepository,
			repository.NewBadgeRepository,
			repository.NewTransactionManager,

			NewObjectStore,
			NewClassifier,
			publishers.NewApprovalPublisher,

			service.NewDedupeService,
			service.NewPointService,
			service.NewSubmissionService,
			service.NewModerationService,
			service.NewClassifyService,
			service.NewMarketService,
			service.NewProfileService,
			service.NewRankingService,
			service.NewBadgeService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics,
	db *gorm.DB, rabbit *mq.RabbitMQ, logger *zap.Logger, lc fx.Lifecycle,
) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	api.SetupRoutes(app, handler)

	dbCollector := metrics.NewDatabaseCollector(m, logger, db)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.QueueApproval}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			dbCollector.Start(15 * time.Second)

			go app.Listen(cfg.API.Port)
			logger.Info("API server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			dbCollector.Stop()
			if err := rabbit.Close(); err != nil {
				logger.Warn("failed to close RabbitMQ connection", zap.Error(err))
			}
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		BodyLimit:    20 * 1024 * 1024,
	})
}

func NewValidate() *validator.Validate {
	return validator.New()
}

func NewXValidator(v *validator.Validate, m *metrics.Metrics) apivalidator.IXValidator {
	return apivalidator.NewXValidator(v, m)
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewObjectStore(cfg *config.Config) objectstore.ObjectStore {
	client := httpclient.NewHTTPClient(cfg.Storage.Timeout)
	return objectstore.NewObjectStore(cfg.Storage, client)
}

func NewClassifier(cfg *config.Config) classifier.Classifier {
	client := httpclient.NewHTTPClient(cfg.Classifier.Timeout)
	return classifier.NewClassifier(cfg.Classifier, client)
}
