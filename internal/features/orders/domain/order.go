package domain

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Customer holds the recipient's descriptive contact data.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	// TaxID is the national tax identifier (CPF in Brazil).
	TaxID string `json:"taxId"`
}

// TrackingEvent is one immutable milestone on an order's timeline.
type TrackingEvent struct {
	// ID is unique within the owning order only.
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	StatusLabel string    `json:"statusLabel"`
	Description string    `json:"description"`
}

// Order is the tracked shipment aggregate.
type Order struct {
	ID                string          `json:"id"`
	TrackingCode      string          `json:"trackingCode"`
	Customer          Customer        `json:"customer"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	CurrentLocation   string          `json:"currentLocation"`
	Status            Status          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	Events            []TrackingEvent `json:"events"`
}

// CreateOrderInput carries the fields accepted when an order is created.
type CreateOrderInput struct {
	CustomerName      string     `json:"customerName" validate:"required"`
	CustomerEmail     string     `json:"customerEmail"`
	CustomerPhone     string     `json:"customerPhone"`
	CustomerTaxID     string     `json:"customerTaxId"`
	Origin            string     `json:"origin" validate:"required"`
	Destination       string     `json:"destination" validate:"required"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate trims every text field and checks that the required ones are present.
func (in *CreateOrderInput) Validate() error {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.CustomerTaxID = strings.TrimSpace(in.CustomerTaxID)
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// NewOrder builds a pending order at its origin with the initial "created" event.
// The input must already be validated.
func NewOrder(id, trackingCode string, in CreateOrderInput, now time.Time) *Order {
	o := &Order{
		ID:           id,
		TrackingCode: trackingCode,
		Customer: Customer{
			Name:  in.CustomerName,
			Email: in.CustomerEmail,
			Phone: in.CustomerPhone,
			TaxID: in.CustomerTaxID,
		},
		Origin:            in.Origin,
		Destination:       in.Destination,
		CurrentLocation:   in.Origin,
		Status:            StatusPending,
		CreatedAt:         now,
		EstimatedDelivery: copyTime(in.EstimatedDelivery),
	}
	o.Events = []TrackingEvent{{
		ID:          "1",
		Timestamp:   now,
		Location:    in.Origin,
		StatusLabel: CreatedLabel,
		Description: CreatedDescription,
	}}
	return o
}

// AppendEvent records a status change and moves the order's summary fields with it.
// Prior events are never touched.
func (o *Order) AppendEvent(status Status, location, description string, at time.Time) TrackingEvent {
	e := TrackingEvent{
		ID:          strconv.Itoa(len(o.Events) + 1),
		Timestamp:   at,
		Location:    location,
		StatusLabel: status.Label(),
		Description: description,
	}
	o.Events = append(o.Events, e)
	o.Status = status
	o.CurrentLocation = location
	return e
}

// LatestEvent returns the most recent timeline entry.
func (o *Order) LatestEvent() TrackingEvent {
	return o.Events[len(o.Events)-1]
}

// DetailsPatch is a partial update of an order's descriptive fields.
// Nil fields are left unchanged. ClearEstimatedDelivery removes the estimate and
// takes precedence over EstimatedDelivery.
type DetailsPatch struct {
	CustomerName           *string
	CustomerEmail          *string
	CustomerPhone          *string
	CustomerTaxID          *string
	Origin                 *string
	Destination            *string
	EstimatedDelivery      *time.Time
	ClearEstimatedDelivery bool
}

// Empty reports whether the patch changes nothing.
func (p DetailsPatch) Empty() bool {
	return p.CustomerName == nil && p.CustomerEmail == nil && p.CustomerPhone == nil &&
		p.CustomerTaxID == nil && p.Origin == nil && p.Destination == nil && p.EstimatedDelivery == nil &&
		!p.ClearEstimatedDelivery
}

// ApplyDetails updates customer, route and delivery estimate. Identity, status,
// current location and the event history are never changed by it.
func (o *Order) ApplyDetails(p DetailsPatch) error {
	var missing []string
	required := []struct {
		name  string
		value *string
	}{
		{"customerName", p.CustomerName},
		{"origin", p.Origin},
		{"destination", p.Destination},
	}
	for _, r := range required {
		if r.value != nil && strings.TrimSpace(*r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&o.Customer.Name, p.CustomerName)
	set(&o.Customer.Email, p.CustomerEmail)
	set(&o.Customer.Phone, p.CustomerPhone)
	set(&o.Customer.TaxID, p.CustomerTaxID)
	set(&o.Origin, p.Origin)
	set(&o.Destination, p.Destination)
	switch {
	case p.ClearEstimatedDelivery:
		o.EstimatedDelivery = nil
	case p.EstimatedDelivery != nil:
		o.EstimatedDelivery = copyTime(p.EstimatedDelivery)
	}
	return nil
}

// Clone returns a deep copy that shares no memory with o.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.EstimatedDelivery = copyTime(o.EstimatedDelivery)
	c.Events = make([]TrackingEvent, len(o.Events))
	copy(c.Events, o.Events)
	return &c
}

// NormalizeTrackingCode maps a tracking code to its case-insensitive lookup key.
func NormalizeTrackingCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
