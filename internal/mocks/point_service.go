package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/service"
)

type PointService struct {
	mock.Mock
}

func (m *PointService) SightingAward(ctx context.Context, userID, creatureID string, rarity catalog.Rarity) (service.PointAward, error) {
	args := m.Called(ctx, userID, creatureID, rarity)
	return args.Get(0).(service.PointAward), args.Error(1)
}

func (m *PointService) CleanupAward(amount model.CleanupAmount) service.PointAward {
	args := m.Called(amount)
	return args.Get(0).(service.PointAward)
}

func (m *PointService) AddPoints(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}
