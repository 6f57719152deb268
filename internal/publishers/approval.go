package publishers

import (
	"context"
	"encoding/json"

	"github.com/tidewatch/backend/internal/service"
	"github.com/tidewatch/backend/pkg/mq"
	"go.uber.org/zap"
)

// QueueApproval carries approval events from the moderation API to the
// ranking worker.
const QueueApproval = "moderation.approved"

type ApprovalPublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewApprovalPublisher(publisher mq.Publisher, logger *zap.Logger) service.EventPublisher {
	return &ApprovalPublisher{publisher: publisher, logger: logger}
}

func (a *ApprovalPublisher) PublishApproval(ctx context.Context, event service.ApprovalEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := a.publisher.Publish(ctx, "", QueueApproval, body); err != nil {
		a.logger.Error("Failed to publish approval event",
			zap.Error(err),
			zap.String("recordID", event.RecordID))
		return err
	}

	a.logger.Debug("Approval event published",
		zap.String("kind", event.Kind),
		zap.String("recordID", event.RecordID))

	return nil
}
