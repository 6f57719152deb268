package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/service"
)

type ModerationService struct {
	mock.Mock
}

func (m *ModerationService) DecideSighting(ctx context.Context, cmd service.DecideSightingCommand) (service.DecideSightingResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.DecideSightingResponse), args.Error(1)
}

func (m *ModerationService) DecideCleanup(ctx context.Context, cmd service.DecideCleanupCommand) (service.DecideCleanupResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.DecideCleanupResponse), args.Error(1)
}

func (m *ModerationService) PendingSightings(ctx context.Context, limit, offset int) ([]model.Sighting, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Sighting), args.Get(1).(int64), args.Error(2)
}

func (m *ModerationService) PendingCleanups(ctx context.Context, limit, offset int) ([]model.Cleanup, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Cleanup), args.Error(1)
}
