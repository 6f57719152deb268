package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/pkg/classifier"
)

type Classifier struct {
	mock.Mock
}

func (m *Classifier) Classify(ctx context.Context, imageBytes []byte) ([]classifier.LabelScore, error) {
	args := m.Called(ctx, imageBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]classifier.LabelScore), args.Error(1)
}
