package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ObjectStore struct {
	mock.Mock
}

func (m *ObjectStore) Upload(ctx context.Context, data []byte, folder string, contentType string) (string, error) {
	args := m.Called(ctx, data, folder, contentType)
	return args.String(0), args.Error(1)
}

func (m *ObjectStore) Delete(ctx context.Context, objectPath string) error {
	args := m.Called(ctx, objectPath)
	return args.Error(0)
}
