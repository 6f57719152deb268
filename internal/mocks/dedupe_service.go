package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/service"
)

type DedupeService struct {
	mock.Mock
}

func (m *DedupeService) CheckDuplicate(ctx context.Context, imageBytes []byte, userID string) (service.DuplicateCheckResult, error) {
	args := m.Called(ctx, imageBytes, userID)
	return args.Get(0).(service.DuplicateCheckResult), args.Error(1)
}
