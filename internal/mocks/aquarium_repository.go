package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/model"
)

type AquariumRepository struct {
	mock.Mock
}

func (m *AquariumRepository) CreateEntry(ctx context.Context, entry *model.AquariumEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *AquariumRepository) CreatePurchase(ctx context.Context, record *model.PurchaseRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *AquariumRepository) ListCreatureIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *AquariumRepository) ListPurchases(ctx context.Context, userID string, limit, offset int) ([]model.PurchaseRecord, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PurchaseRecord), args.Error(1)
}
