package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/repository"
)

type SightingRepository struct {
	mock.Mock
}

func (m *SightingRepository) Create(ctx context.Context, sighting *model.Sighting) error {
	args := m.Called(ctx, sighting)
	return args.Error(0)
}

func (m *SightingRepository) GetByID(ctx context.Context, id string) (*model.Sighting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sighting), args.Error(1)
}

func (m *SightingRepository) List(ctx context.Context, status model.SubmissionStatus, userID string, limit, offset int) ([]model.Sighting, error) {
	args := m.Called(ctx, status, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sighting), args.Error(1)
}

func (m *SightingRepository) Count(ctx context.Context, status model.SubmissionStatus, userID string) (int64, error) {
	args := m.Called(ctx, status, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SightingRepository) CountApprovedByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SightingRepository) UpdateDecision(ctx context.Context, sighting *model.Sighting) error {
	args := m.Called(ctx, sighting)
	return args.Error(0)
}

func (m *SightingRepository) ListFingerprints(ctx context.Context) ([]repository.FingerprintRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FingerprintRecord), args.Error(1)
}
