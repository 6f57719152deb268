package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/service"
)

type RankingService struct {
	mock.Mock
}

func (m *RankingService) RecordApproval(ctx context.Context, event service.ApprovalEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *RankingService) TopByPoints(ctx context.Context, n int64) ([]service.RankEntry, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.RankEntry), args.Error(1)
}

func (m *RankingService) TopByCleanups(ctx context.Context, n int64) ([]service.RankEntry, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.RankEntry), args.Error(1)
}

func (m *RankingService) UserPointsRank(ctx context.Context, userID string) (service.RankEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(service.RankEntry), args.Error(1)
}
