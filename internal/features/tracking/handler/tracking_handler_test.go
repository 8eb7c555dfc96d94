package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"parcel-tracker/internal/features/orders/adapters"
	"parcel-tracker/internal/features/orders/domain"
	"parcel-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := adapters.NewMemoryOrderRepository()
	require.NoError(t, adapters.Seed(context.Background(), repo))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	NewTrackingHandler(service.NewTrackingService(repo)).RegisterRoutes(app)
	return app
}

// TestTrackingHandler_GetTracking_Success verifies a known code returns the order timeline.
func TestTrackingHandler_GetTracking_Success(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("GET", "/tracking/tr001234567", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result domain.Order
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	assert.Equal(t, "TR001234567", result.TrackingCode)
	assert.Equal(t, domain.StatusInTransit, result.Status)
	assert.Equal(t, "Taubaté, SP", result.CurrentLocation)
	assert.Len(t, result.Events, 3)
}

// TestTrackingHandler_GetTracking_NotFound verifies unknown codes return 404 with the ray id.
func TestTrackingHandler_GetTracking_NotFound(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("GET", "/tracking/TR999999999", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Equal(t, "tracking code not found", errResp.Message)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

// TestTrackingHandler_GetTracking_PartialCode verifies prefixes never match.
func TestTrackingHandler_GetTracking_PartialCode(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("GET", "/tracking/TR00123", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// TestTrackingHandler_GetTracking_MissingCode verifies the route requires a code segment.
func TestTrackingHandler_GetTracking_MissingCode(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("GET", "/tracking/", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
