package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/repository"
)

type CleanupRepository struct {
	mock.Mock
}

func (m *CleanupRepository) Create(ctx context.Context, cleanup *model.Cleanup) error {
	args := m.Called(ctx, cleanup)
	return args.Error(0)
}

func (m *CleanupRepository) GetByID(ctx context.Context, id string) (*model.Cleanup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cleanup), args.Error(1)
}

func (m *CleanupRepository) List(ctx context.Context, status model.SubmissionStatus, userID string, limit, offset int) ([]model.Cleanup, error) {
	args := m.Called(ctx, status, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Cleanup), args.Error(1)
}

func (m *CleanupRepository) CountApprovedByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CleanupRepository) UpdateDecision(ctx context.Context, cleanup *model.Cleanup) error {
	args := m.Called(ctx, cleanup)
	return args.Error(0)
}

func (m *CleanupRepository) ListBeforeFingerprints(ctx context.Context) ([]repository.FingerprintRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FingerprintRecord), args.Error(1)
}

func (m *CleanupRepository) ListAfterFingerprints(ctx context.Context) ([]repository.FingerprintRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FingerprintRecord), args.Error(1)
}
