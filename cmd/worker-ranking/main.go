package main

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/config"
	"github.com/tidewatch/backend/internal/consumers"
	"github.com/tidewatch/backend/internal/database"
	"github.com/tidewatch/backend/internal/publishers"
	"github.com/tidewatch/backend/internal/repository"
	"github.com/tidewatch/backend/internal/service"
	"github.com/tidewatch/backend/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewRedisClient,
			NewMQConnection,
			NewMQConsumer,
			database.NewConnection,
			catalog.New,

			repository.NewCollectionRepository,
			repository.NewBadgeRepository,

			service.NewRankingService,
			service.NewBadgeService,
			consumers.NewApprovalConsumer,
		),
		fx.Invoke(runApprovalConsumer),
	).Run()
}

func runApprovalConsumer(approvalConsumer consumers.ApprovalConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.QueueApproval}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				if err := approvalConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("approval consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping approval consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
