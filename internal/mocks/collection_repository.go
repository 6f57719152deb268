package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/model"
)

type CollectionRepository struct {
	mock.Mock
}

func (m *CollectionRepository) Create(ctx context.Context, entry *model.CollectionEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *CollectionRepository) Exists(ctx context.Context, userID, creatureID string) (bool, error) {
	args := m.Called(ctx, userID, creatureID)
	return args.Bool(0), args.Error(1)
}

func (m *CollectionRepository) ListCreatureIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *CollectionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
