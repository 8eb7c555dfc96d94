package handler

import (
	"parcel-tracker/internal/features/tracking/ports"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles the public tracking endpoint.
type TrackingHandler struct {
	lookup ports.TrackingLookup
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(lookup ports.TrackingLookup) *TrackingHandler {
	return &TrackingHandler{
		lookup: lookup,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// RegisterRoutes mounts the public tracking route on r.
func (h *TrackingHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/tracking/:code", h.GetTracking)
}

// GetTracking godoc
// @Summary Track a parcel
// @Description Resolves a tracking code (case-insensitive, exact match) to the order and its event timeline
// @Tags tracking
// @Produce json
// @Param code path string true "Tracking code"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Router /tracking/{code} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	order, found := h.lookup.Search(c.UserContext(), c.Params("code"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "tracking code not found",
			RayID:   rayID,
		})
	}

	return c.JSON(order)
}
