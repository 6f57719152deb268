package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/service"
)

type BadgeService struct {
	mock.Mock
}

func (m *BadgeService) AwardCollectionBadges(ctx context.Context, userID string) ([]catalog.Badge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Badge), args.Error(1)
}

func (m *BadgeService) UserBadges(ctx context.Context, userID string) ([]service.EarnedBadge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.EarnedBadge), args.Error(1)
}

func (m *BadgeService) AllBadges() []catalog.Badge {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]catalog.Badge)
}
