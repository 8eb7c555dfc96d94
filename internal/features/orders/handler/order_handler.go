package handler

import (
	"errors"
	"net/http"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/orders/domain"
	"parcel-tracker/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles the admin HTTP requests of the order lifecycle.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// RegisterRoutes mounts the order routes on an /orders group. Callers are expected to
// guard the group with authorization.
func (h *OrderHandler) RegisterRoutes(orders fiber.Router) {
	orders.Post("", h.CreateOrder)
	orders.Get("", h.ListOrders)
	orders.Get("/stats", h.GetStatistics)
	orders.Get("/:id", h.GetOrder)
	orders.Patch("/:id", h.EditOrder)
	orders.Post("/:id/events", h.UpdateOrderStatus)
	orders.Delete("/:id", h.DeleteOrder)
}

// CreateOrder handles POST /orders.
// @Summary Create an order
// @Description Registers a pending order at its origin and allocates a unique tracking code.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body CreateOrderRequest true "Order details"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	order, err := h.service.CreateOrder(c.UserContext(), req.toInput())
	if err != nil {
		return h.fail(c, "Failed to create order", err)
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// ListOrders handles GET /orders.
// @Summary List orders
// @Description Lists every order in creation order, optionally filtered by status.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending, in_transit, delivered, cancelled)"
// @Success 200 {array} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	var filter ports.ListFilter
	if raw := c.Query("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return h.fail(c, "Invalid status filter", err)
		}
		filter.Status = status
	}

	orders, err := h.service.ListOrders(c.UserContext(), filter)
	if err != nil {
		return h.fail(c, "Failed to list orders", err)
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// GetStatistics handles GET /orders/stats.
// @Summary Order statistics
// @Description Counts orders per status from the live store.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Statistics
// @Failure 401 {object} ErrorResponse
// @Router /orders/stats [get]
func (h *OrderHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.service.OrderStatistics(c.UserContext())
	if err != nil {
		return h.fail(c, "Failed to compute statistics", err)
	}

	return c.Status(http.StatusOK).JSON(stats)
}

// GetOrder handles GET /orders/:id.
// @Summary Get order by ID
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Failed to fetch order", err)
	}

	return c.Status(http.StatusOK).JSON(order)
}

// EditOrder handles PATCH /orders/:id.
// @Summary Edit order details
// @Description Partially updates customer, route and delivery estimate. Status and history are untouched.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param patch body EditOrderRequest true "Fields to change"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [patch]
func (h *OrderHandler) EditOrder(c *fiber.Ctx) error {
	var req EditOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	order, err := h.service.EditOrder(c.UserContext(), c.Params("id"), req.toPatch())
	if err != nil {
		return h.fail(c, "Failed to edit order", err)
	}

	return c.Status(http.StatusOK).JSON(order)
}

// UpdateOrderStatus handles POST /orders/:id/events.
// @Summary Append a status event
// @Description Appends a timeline event and moves the order's status and current location.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param event body UpdateStatusRequest true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/events [post]
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return h.fail(c, "Invalid status", err)
	}

	order, err := h.service.UpdateOrderStatus(c.UserContext(), c.Params("id"), status, req.Location, req.Description)
	if err != nil {
		return h.fail(c, "Failed to update order status", err)
	}

	return c.Status(http.StatusOK).JSON(order)
}

// DeleteOrder handles DELETE /orders/:id.
// @Summary Delete an order
// @Description Permanently removes the order and its history.
// @Tags Orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.service.DeleteOrder(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, "Failed to delete order", err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// fail maps a service error to its HTTP status and writes the error body.
func (h *OrderHandler) fail(c *fiber.Ctx, msg string, err error) error {
	rayID := rayIDOf(c)
	resp := ErrorResponse{RayID: rayID}

	var verr *domain.ValidationError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		resp.Message = err.Error()
		resp.Fields = verr.Fields
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		resp.Message = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		resp.Message = "Order not found"
	case errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
		resp.Message = err.Error()
	default:
		resp.Message = "Internal Server Error"
	}

	if status >= http.StatusInternalServerError {
		logger.Get().Error(msg,
			zap.String("order_id", c.Params("id")),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
	} else {
		logger.Get().Debug(msg,
			zap.String("order_id", c.Params("id")),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(resp)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: "Invalid request body",
		RayID:   rayIDOf(c),
	})
}

func rayIDOf(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}
