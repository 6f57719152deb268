package v1_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	v1 "github.com/tidewatch/backend/internal/api/v1"
	apivalidator "github.com/tidewatch/backend/internal/api/validator"
	"github.com/tidewatch/backend/internal/metrics"
	"github.com/tidewatch/backend/internal/mocks"
	"github.com/tidewatch/backend/internal/service"
	"go.uber.org/zap"
)

var testMetrics = metrics.NewMetrics()

type handlerMocks struct {
	market     *mocks.MarketService
	moderation *mocks.ModerationService
}

func newTestApp(t *testing.T) (*fiber.App, handlerMocks) {
	t.Helper()

	m := handlerMocks{
		market:     &mocks.MarketService{},
		moderation: &mocks.ModerationService{},
	}

	xv := apivalidator.NewXValidator(validator.New(), testMetrics)
	handler := v1.NewHandler(zap.NewNop(), xv, testMetrics,
		nil, m.moderation, nil, m.market, nil, nil, nil)

	app := fiber.New()
	app.Post("/api/v1/market/purchase", handler.Purchase)
	app.Post("/api/v1/admin/sightings/:id/decision", handler.DecideSighting)
	app.Post("/api/v1/admin/cleanups/:id/decision", handler.DecideCleanup)

	return app, m
}

func postJSON(t *testing.T, app *fiber.App, url string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	return resp.StatusCode, decoded
}

func TestHandler_Purchase_Validation(t *testing.T) {
	t.Run("invalid user id stops before the service", func(t *testing.T) {
		app, m := newTestApp(t)

		status, body := postJSON(t, app, "/api/v1/market/purchase", map[string]interface{}{
			"user_id":      "not-a-uuid",
			"creature_ids": []string{"creature-001"},
		})

		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, "VALIDATION_FAILED", body["code"])
		assert.Contains(t, body["message"], "UserID failed on uuid4")
		m.market.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything)
	})

	t.Run("invalid creature id stops before the service", func(t *testing.T) {
		app, m := newTestApp(t)

		status, body := postJSON(t, app, "/api/v1/market/purchase", map[string]interface{}{
			"user_id":      "3e27bd23-04a8-4f21-8f12-6f4a09a3a2aa",
			"creature_ids": []string{"shark!!"},
		})

		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, "VALIDATION_FAILED", body["code"])
		m.market.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything)
	})

	t.Run("valid request reaches the service", func(t *testing.T) {
		app, m := newTestApp(t)

		m.market.On("Purchase", mock.Anything, service.PurchaseCommand{
			UserID:      "3e27bd23-04a8-4f21-8f12-6f4a09a3a2aa",
			CreatureIDs: []string{"creature-001"},
		}).Return(service.PurchaseResponse{
			Success:          true,
			PurchasedIDs:     []string{"creature-001"},
			TotalSpent:       50,
			RemainingBalance: 450,
		}, nil)

		status, body := postJSON(t, app, "/api/v1/market/purchase", map[string]interface{}{
			"user_id":      "3e27bd23-04a8-4f21-8f12-6f4a09a3a2aa",
			"creature_ids": []string{"creature-001"},
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["success"])
		m.market.AssertExpectations(t)
	})
}

func TestHandler_DecideSighting_Validation(t *testing.T) {
	app, m := newTestApp(t)

	status, body := postJSON(t, app, "/api/v1/admin/sightings/s-1/decision", map[string]interface{}{
		"approve":     true,
		"creature_id": "not-a-creature",
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	m.moderation.AssertNotCalled(t, "DecideSighting", mock.Anything, mock.Anything)
}

func TestHandler_DecideCleanup_Validation(t *testing.T) {
	app, m := newTestApp(t)

	status, body := postJSON(t, app, "/api/v1/admin/cleanups/c-1/decision", map[string]interface{}{
		"approve":     true,
		"creature_id": "not-a-creature",
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	m.moderation.AssertNotCalled(t, "DecideCleanup", mock.Anything, mock.Anything)
}
