package adapters

import (
	"context"
	"fmt"
	"time"

	"parcel-tracker/internal/features/orders/domain"
	"parcel-tracker/internal/features/orders/ports"
)

// DemoOrders returns the two sample shipments shown on a fresh installation.
func DemoOrders() []*domain.Order {
	at := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return t
	}
	eta1 := at("2024-01-18T18:00:00Z")
	eta2 := at("2024-01-15T16:00:00Z")

	return []*domain.Order{
		{
			ID:           "1",
			TrackingCode: "TR001234567",
			Customer: domain.Customer{
				Name:  "João Silva",
				Email: "joao@email.com",
				Phone: "(11) 99999-9999",
				TaxID: "123.456.789-00",
			},
			Origin:            "São Paulo, SP",
			Destination:       "Rio de Janeiro, RJ",
			CurrentLocation:   "Taubaté, SP",
			Status:            domain.StatusInTransit,
			CreatedAt:         at("2024-01-15T10:00:00Z"),
			EstimatedDelivery: &eta1,
			Events: []domain.TrackingEvent{
				{ID: "1", Timestamp: at("2024-01-15T10:00:00Z"), Location: "São Paulo, SP", StatusLabel: domain.CreatedLabel, Description: domain.CreatedDescription},
				{ID: "2", Timestamp: at("2024-01-15T14:30:00Z"), Location: "São Paulo, SP", StatusLabel: domain.StatusInTransit.Label(), Description: "Mercadoria saiu para entrega"},
				{ID: "3", Timestamp: at("2024-01-16T09:15:00Z"), Location: "Taubaté, SP", StatusLabel: domain.StatusInTransit.Label(), Description: "Mercadoria passou pelo centro de distribuição"},
			},
		},
		{
			ID:           "2",
			TrackingCode: "TR001234568",
			Customer: domain.Customer{
				Name:  "Maria Santos",
				Email: "maria@email.com",
				Phone: "(21) 88888-8888",
				TaxID: "987.654.321-00",
			},
			Origin:            "Belo Horizonte, MG",
			Destination:       "Salvador, BA",
			CurrentLocation:   "Salvador, BA",
			Status:            domain.StatusDelivered,
			CreatedAt:         at("2024-01-10T08:00:00Z"),
			EstimatedDelivery: &eta2,
			Events: []domain.TrackingEvent{
				{ID: "1", Timestamp: at("2024-01-10T08:00:00Z"), Location: "Belo Horizonte, MG", StatusLabel: domain.CreatedLabel, Description: domain.CreatedDescription},
				{ID: "2", Timestamp: at("2024-01-12T11:20:00Z"), Location: "Salvador, BA", StatusLabel: domain.StatusDelivered.Label(), Description: "Mercadoria foi entregue ao destinatário"},
			},
		},
	}
}

// Seed inserts the demo orders into repo.
func Seed(ctx context.Context, repo ports.OrderRepository) error {
	for _, o := range DemoOrders() {
		if err := repo.Insert(ctx, o); err != nil {
			return fmt.Errorf("failed to seed order %s: %w", o.TrackingCode, err)
		}
	}
	return nil
}
