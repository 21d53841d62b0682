package cart_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okoval/handmade-shop/internal/cart"
	"github.com/okoval/handmade-shop/internal/models"
	"github.com/okoval/handmade-shop/internal/storage"
)

var (
	p1 = models.Product{ID: "p1", Name: "Плетений кошик", Price: 100, Image: "/images/basket.jpg"}
	p2 = models.Product{ID: "p2", Name: "Керамічна чашка", Price: 50, Image: "/images/cup.jpg"}
)

func newService(t *testing.T) (*cart.Service, storage.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemoryStore(log)
	return cart.NewService(store, log), store
}

func TestAddItemTwiceAggregates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.AddItem(ctx, "v1", p1)
	require.NoError(t, err)
	got, err := svc.AddItem(ctx, "v1", p1)
	require.NoError(t, err)

	require.Len(t, got.Lines, 1)
	assert.Equal(t, 2, got.Lines[0].Quantity)
	assert.Equal(t, 200.0, got.Total())
}

func TestAddThenRemove(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.AddItem(ctx, "v1", p1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "v1", p2)
	require.NoError(t, err)

	got, err := svc.RemoveItem(ctx, "v1", "p1")
	require.NoError(t, err)

	require.Len(t, got.Lines, 1)
	assert.Equal(t, "p2", got.Lines[0].ID)
	assert.Equal(t, 50.0, got.Total())
}

func TestChangeQuantityToZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.AddItem(ctx, "v1", p1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "v1", p1)
	require.NoError(t, err)

	got, err := svc.ChangeQuantity(ctx, "v1", "p1", -2)
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
}

func TestMutationsPersistAcrossReload(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemoryStore(log)

	first := cart.NewService(store, log)
	_, err := first.AddItem(ctx, "v1", p1)
	require.NoError(t, err)
	_, err = first.AddItem(ctx, "v1", p2)
	require.NoError(t, err)

	// A fresh service over the same store sees the identical cart, the
	// way a new page view rehydrates from storage.
	second := cart.NewService(store, log)
	got, err := second.Get(ctx, "v1")
	require.NoError(t, err)

	require.Len(t, got.Lines, 2)
	assert.Equal(t, "p1", got.Lines[0].ID)
	assert.Equal(t, "p2", got.Lines[1].ID)
	assert.Equal(t, 1, got.Lines[0].Quantity)
}

// conflictStore forces SaveCart to lose the version race n times before
// delegating, simulating a concurrent writer.
type conflictStore struct {
	storage.Store
	remaining int
	saves     int
}

func (s *conflictStore) SaveCart(ctx context.Context, scope string, c models.Cart, version int64) error {
	s.saves++
	if s.remaining > 0 {
		s.remaining--
		return storage.ErrVersionConflict
	}
	return s.Store.SaveCart(ctx, scope, c, version)
}

func TestMutationReplaysOnVersionConflict(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &conflictStore{Store: storage.NewMemoryStore(log), remaining: 2}
	svc := cart.NewService(store, log)

	got, err := svc.AddItem(ctx, "v1", p1)
	require.NoError(t, err)

	assert.Equal(t, 3, store.saves)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 1, got.Lines[0].Quantity)
}

func TestMutationGivesUpAfterBoundedRetries(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &conflictStore{Store: storage.NewMemoryStore(log), remaining: 1 << 30}
	svc := cart.NewService(store, log)

	_, err := svc.AddItem(ctx, "v1", p1)
	assert.ErrorIs(t, err, storage.ErrVersionConflict)
}
