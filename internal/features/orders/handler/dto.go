package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"parcel-tracker/internal/features/orders/domain"
)

// CreateOrderRequest represents the request body for creating an order.
type CreateOrderRequest struct {
	CustomerName  string `json:"customerName" example:"João Silva"`
	CustomerEmail string `json:"customerEmail" example:"joao@email.com"`
	CustomerPhone string `json:"customerPhone" example:"(11) 99999-9999"`
	CustomerTaxID string `json:"customerTaxId" example:"123.456.789-00"`
	Origin        string `json:"origin" example:"São Paulo, SP"`
	Destination   string `json:"destination" example:"Rio de Janeiro, RJ"`
	// EstimatedDelivery is an RFC3339 timestamp.
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}

func (r CreateOrderRequest) toInput() domain.CreateOrderInput {
	return domain.CreateOrderInput{
		CustomerName:      r.CustomerName,
		CustomerEmail:     r.CustomerEmail,
		CustomerPhone:     r.CustomerPhone,
		CustomerTaxID:     r.CustomerTaxID,
		Origin:            r.Origin,
		Destination:       r.Destination,
		EstimatedDelivery: r.EstimatedDelivery,
	}
}

// UpdateStatusRequest represents the request body for appending a status event.
type UpdateStatusRequest struct {
	Status      string `json:"status" example:"in_transit"`
	Location    string `json:"location" example:"Taubaté, SP"`
	Description string `json:"description" example:"Objeto em trânsito"`
}

// EditOrderRequest represents a partial update. Omitted fields are left unchanged.
// An explicit null estimatedDelivery clears the estimate.
type EditOrderRequest struct {
	CustomerName      *string      `json:"customerName,omitempty"`
	CustomerEmail     *string      `json:"customerEmail,omitempty"`
	CustomerPhone     *string      `json:"customerPhone,omitempty"`
	CustomerTaxID     *string      `json:"customerTaxId,omitempty"`
	Origin            *string      `json:"origin,omitempty"`
	Destination       *string      `json:"destination,omitempty"`
	EstimatedDelivery NullableTime `json:"estimatedDelivery" swaggertype:"string" format:"date-time" extensions:"x-nullable"`
}

func (r EditOrderRequest) toPatch() domain.DetailsPatch {
	return domain.DetailsPatch{
		CustomerName:           r.CustomerName,
		CustomerEmail:          r.CustomerEmail,
		CustomerPhone:          r.CustomerPhone,
		CustomerTaxID:          r.CustomerTaxID,
		Origin:                 r.Origin,
		Destination:            r.Destination,
		EstimatedDelivery:      r.EstimatedDelivery.Value,
		ClearEstimatedDelivery: r.EstimatedDelivery.Set && r.EstimatedDelivery.Value == nil,
	}
}

// NullableTime tells an absent timestamp apart from an explicit null.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	n.Value = &t
	return nil
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Fields lists the offending input fields on validation failures.
	Fields []string `json:"fields,omitempty"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
