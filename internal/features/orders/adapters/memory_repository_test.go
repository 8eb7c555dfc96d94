package adapters

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"parcel-tracker/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(id, code string) *domain.Order {
	return domain.NewOrder(id, code, domain.CreateOrderInput{
		CustomerName: "Cliente " + id,
		Origin:       "São Paulo, SP",
		Destination:  "Rio de Janeiro, RJ",
	}, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
}

func TestMemoryOrderRepository_InsertAndFind(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newOrder("a", "TR000000001")))
	require.NoError(t, repo.Insert(ctx, newOrder("b", "TR000000002")))

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "TR000000001", got.TrackingCode)

	got, err = repo.FindByTrackingCode(ctx, "tr000000002")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.FindByTrackingCode(ctx, "TR00000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryOrderRepository_InsertDuplicates(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newOrder("a", "TR00000000A")))

	err := repo.Insert(ctx, newOrder("b", "tr00000000a"))
	assert.ErrorIs(t, err, domain.ErrDuplicateTrackingCode)

	err = repo.Insert(ctx, newOrder("a", "TR00000000B"))
	assert.ErrorIs(t, err, domain.ErrDuplicateOrderID)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryOrderRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	ids := []string{"z", "a", "m", "b"}
	for i, id := range ids {
		require.NoError(t, repo.Insert(ctx, newOrder(id, fmt.Sprintf("TR%09d", i))))
	}
	_, err := repo.Remove(ctx, "m")
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)

	var got []string
	for _, o := range all {
		got = append(got, o.ID)
	}
	assert.Equal(t, []string{"z", "a", "b"}, got)
}

func TestMemoryOrderRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	o := newOrder("a", "TR000000001")
	require.NoError(t, repo.Insert(ctx, o))
	o.Status = domain.StatusDelivered

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)

	got.Events[0].Location = "mutated"
	again, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo, SP", again.Events[0].Location)
}

func TestMemoryOrderRepository_Replace(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newOrder("a", "TR000000001")))

	updated := newOrder("a", "TR000000001")
	updated.Customer.Name = "Novo Nome"
	require.NoError(t, repo.Replace(ctx, "a", updated))

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Novo Nome", got.Customer.Name)

	assert.ErrorIs(t, repo.Replace(ctx, "missing", updated), domain.ErrNotFound)
	assert.Error(t, repo.Replace(ctx, "a", newOrder("a", "TR999999999")))
}

func TestMemoryOrderRepository_Update(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newOrder("a", "TR000000001")))

	t.Run("Success", func(t *testing.T) {
		got, err := repo.Update(ctx, "a", func(o *domain.Order) error {
			o.AppendEvent(domain.StatusInTransit, "Taubaté, SP", "", time.Now())
			return nil
		})
		require.NoError(t, err)
		assert.Len(t, got.Events, 2)

		stored, err := repo.FindByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInTransit, stored.Status)
	})

	t.Run("MutateErrorDiscardsChanges", func(t *testing.T) {
		_, err := repo.Update(ctx, "a", func(o *domain.Order) error {
			o.AppendEvent(domain.StatusCancelled, "X", "", time.Now())
			return domain.ErrInvalidTransition
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		stored, err := repo.FindByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInTransit, stored.Status)
		assert.Len(t, stored.Events, 2)
	})

	t.Run("IdentityChangeRejected", func(t *testing.T) {
		_, err := repo.Update(ctx, "a", func(o *domain.Order) error {
			o.TrackingCode = "TR999999999"
			return nil
		})
		assert.Error(t, err)

		_, err = repo.FindByTrackingCode(ctx, "TR000000001")
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.Update(ctx, "missing", func(o *domain.Order) error { return nil })
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMemoryOrderRepository_Remove(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newOrder("a", "TR000000001")))

	removed, err := repo.Remove(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "TR000000001", removed.TrackingCode)

	_, err = repo.FindByID(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.FindByTrackingCode(ctx, "TR000000001")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Remove(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The freed code can be reused.
	assert.NoError(t, repo.Insert(ctx, newOrder("b", "TR000000001")))
}

func TestMemoryOrderRepository_ConcurrentUpdates(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newOrder("a", "TR000000001")))

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Update(ctx, "a", func(o *domain.Order) error {
				o.AppendEvent(domain.StatusInTransit, fmt.Sprintf("hub-%d", i), "", time.Now())
				return nil
			})
			assert.NoError(t, err)
			_, _ = repo.GetAll(ctx)
		}(i)
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got.Events, workers+1)
	assert.Equal(t, got.LatestEvent().Location, got.CurrentLocation)

	seen := make(map[string]bool)
	for _, e := range got.Events {
		assert.False(t, seen[e.ID], "duplicate event id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestMemoryOrderRepository_ConcurrentInsertSameCode(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	const workers = 20
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Insert(ctx, newOrder(fmt.Sprintf("id-%d", i), "TR000000001"))
		}(i)
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, domain.ErrDuplicateTrackingCode)
		}
	}
	assert.Equal(t, 1, ok)
}
