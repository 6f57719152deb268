package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/mocks"
	"github.com/tidewatch/backend/internal/service"
	"github.com/tidewatch/backend/pkg/classifier"
	"go.uber.org/zap"
)

func TestClassify_ClassifyCreature(t *testing.T) {
	logger := zap.NewNop()
	cat := catalog.New()
	imageBytes := []byte("some jpeg")

	t.Run("maps known model label onto catalog creature", func(t *testing.T) {
		mockClassifier := &mocks.Classifier{}
		svc := service.NewClassifyService(mockClassifier, cat, logger)

		mockClassifier.On("Classify", context.Background(), imageBytes).
			Return([]classifier.LabelScore{
				{Label: "sea lion", Score: 0.91},
				{Label: "rock", Score: 0.05},
			}, nil)

		result := svc.ClassifyCreature(context.Background(), imageBytes)

		assert.Equal(t, "creature-010", result.CreatureID)
		assert.Equal(t, catalog.RarityLegendary, result.Rarity)
		assert.True(t, result.Confident)
		assert.False(t, result.Degraded)
		assert.InDelta(t, 0.91, result.Confidence, 0.001)
	})

	t.Run("low score mapped but not confident", func(t *testing.T) {
		mockClassifier := &mocks.Classifier{}
		svc := service.NewClassifyService(mockClassifier, cat, logger)

		mockClassifier.On("Classify", context.Background(), imageBytes).
			Return([]classifier.LabelScore{{Label: "octopus", Score: 0.41}}, nil)

		result := svc.ClassifyCreature(context.Background(), imageBytes)

		assert.Equal(t, "creature-006", result.CreatureID)
		assert.False(t, result.Confident)
	})

	t.Run("unmapped labels come back unknown", func(t *testing.T) {
		mockClassifier := &mocks.Classifier{}
		svc := service.NewClassifyService(mockClassifier, cat, logger)

		mockClassifier.On("Classify", context.Background(), imageBytes).
			Return([]classifier.LabelScore{{Label: "bicycle", Score: 0.88}}, nil)

		result := svc.ClassifyCreature(context.Background(), imageBytes)

		assert.Equal(t, "unknown", result.CreatureID)
		assert.False(t, result.Confident)
		assert.False(t, result.Degraded)
	})

	t.Run("classifier failure serves a deterministic degraded pick", func(t *testing.T) {
		mockClassifier := &mocks.Classifier{}
		svc := service.NewClassifyService(mockClassifier, cat, logger)

		mockClassifier.On("Classify", context.Background(), imageBytes).
			Return(nil, classifier.ErrServerError)

		first := svc.ClassifyCreature(context.Background(), imageBytes)
		second := svc.ClassifyCreature(context.Background(), imageBytes)

		assert.True(t, first.Degraded)
		assert.Equal(t, float64(0), first.Confidence)
		assert.False(t, first.Confident)
		_, known := cat.Get(first.CreatureID)
		assert.True(t, known)

		// same bytes, same suggestion
		assert.Equal(t, first.CreatureID, second.CreatureID)
	})

	t.Run("disabled classifier also degrades", func(t *testing.T) {
		mockClassifier := &mocks.Classifier{}
		svc := service.NewClassifyService(mockClassifier, cat, logger)

		mockClassifier.On("Classify", context.Background(), imageBytes).
			Return(nil, classifier.ErrDisabled)

		result := svc.ClassifyCreature(context.Background(), imageBytes)
		assert.True(t, result.Degraded)
	})
}
