package consumers

import (
	"context"
	"encoding/json"

	"github.com/tidewatch/backend/internal/publishers"
	"github.com/tidewatch/backend/internal/service"
	"github.com/tidewatch/backend/pkg/mq"
	"go.uber.org/zap"
)

type ApprovalConsumer interface {
	Consume(ctx context.Context) error
}

type approvalConsumer struct {
	ranking  service.RankingService
	badges   service.BadgeService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewApprovalConsumer(ranking service.RankingService, badges service.BadgeService,
	consumer mq.Consumer, logger *zap.Logger) ApprovalConsumer {
	return &approvalConsumer{ranking: ranking, badges: badges, consumer: consumer, logger: logger}
}

func (a *approvalConsumer) Consume(ctx context.Context) error {
	return a.consumer.Consume(ctx, 1, publishers.QueueApproval, a.handleEvent)
}

func (a *approvalConsumer) handleEvent(ctx context.Context, body []byte) error {
	var event service.ApprovalEvent
	if err := json.Unmarshal(body, &event); err != nil {
		a.logger.Warn("invalid approval event", zap.Error(err), zap.ByteString("body", body))
		return err
	}

	if err := a.ranking.RecordApproval(ctx, event); err != nil {
		a.logger.Error("Failed to update rankings",
			zap.Error(err),
			zap.String("recordID", event.RecordID))
		return mq.Temporary(err)
	}

	// Only a first discovery can grow the collection past a threshold.
	if event.Discovery {
		if _, err := a.badges.AwardCollectionBadges(ctx, event.UserID); err != nil {
			a.logger.Error("Failed to award badges",
				zap.Error(err),
				zap.String("userID", event.UserID))
			return mq.Temporary(err)
		}
	}

	return nil
}
