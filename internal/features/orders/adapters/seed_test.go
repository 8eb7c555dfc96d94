package adapters

import (
	"context"
	"testing"

	"parcel-tracker/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoOrders_Consistent(t *testing.T) {
	orders := DemoOrders()
	require.Len(t, orders, 2)

	for _, o := range orders {
		require.NotEmpty(t, o.Events, o.TrackingCode)
		assert.Equal(t, o.LatestEvent().Location, o.CurrentLocation, o.TrackingCode)
		assert.Equal(t, domain.CreatedLabel, o.Events[0].StatusLabel)
		assert.Equal(t, o.Origin, o.Events[0].Location)
		assert.Equal(t, o.CreatedAt, o.Events[0].Timestamp)
		for i := 1; i < len(o.Events); i++ {
			assert.False(t, o.Events[i].Timestamp.Before(o.Events[i-1].Timestamp))
		}
	}

	assert.Equal(t, domain.StatusInTransit, orders[0].Status)
	assert.Len(t, orders[0].Events, 3)
	assert.Equal(t, domain.StatusDelivered, orders[1].Status)
	assert.Len(t, orders[1].Events, 2)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrderRepository()

	require.NoError(t, Seed(ctx, repo))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "TR001234567", all[0].TrackingCode)

	stats := domain.ComputeStatistics(all)
	assert.Equal(t, domain.Statistics{Total: 2, InTransit: 1, Delivered: 1}, stats)

	err = Seed(ctx, repo)
	assert.ErrorIs(t, err, domain.ErrDuplicateTrackingCode)
}
