package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/service"
)

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishApproval(ctx context.Context, event service.ApprovalEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
