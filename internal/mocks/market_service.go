package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/service"
)

type MarketService struct {
	mock.Mock
}

func (m *MarketService) ListItems(ctx context.Context, userID string) (service.MarketListing, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(service.MarketListing), args.Error(1)
}

func (m *MarketService) Purchase(ctx context.Context, cmd service.PurchaseCommand) (service.PurchaseResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.PurchaseResponse), args.Error(1)
}
