package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/model"
)

type BadgeRepository struct {
	mock.Mock
}

func (m *BadgeRepository) Create(ctx context.Context, badge *model.UserBadge) error {
	args := m.Called(ctx, badge)
	return args.Error(0)
}

func (m *BadgeRepository) ListByUser(ctx context.Context, userID string) ([]model.UserBadge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserBadge), args.Error(1)
}
