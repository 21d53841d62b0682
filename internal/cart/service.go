package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/okoval/handmade-shop/internal/models"
	"github.com/okoval/handmade-shop/internal/storage"
)

// mutateAttempts bounds the replay loop when a concurrent request wins
// the version race. Two rapid clicks both read the same snapshot; the
// loser re-reads and replays its mutation instead of clobbering.
const mutateAttempts = 5

// Service is the cart state manager. Every mutation is a full
// read-modify-write cycle against the store: load the whole cart, mutate
// in memory, save the whole cart back under the version tag.
type Service struct {
	store storage.Store
	log   *slog.Logger
}

func NewService(store storage.Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Get returns the current cart for a scope.
func (s *Service) Get(ctx context.Context, scope string) (models.Cart, error) {
	cart, _, err := s.store.LoadCart(ctx, scope)
	return cart, err
}

// AddItem puts one unit of the product into the cart: an existing line
// is incremented, otherwise a new line is appended at the end.
func (s *Service) AddItem(ctx context.Context, scope string, product models.Product) (models.Cart, error) {
	return s.mutate(ctx, scope, func(c *models.Cart) {
		c.Add(product)
	})
}

// ChangeQuantity applies delta to the line matching the product ID. A
// quantity driven to zero or below removes the line. Unknown IDs are a
// no-op, matching how a stale row control behaves after a re-render.
func (s *Service) ChangeQuantity(ctx context.Context, scope, productID string, delta int) (models.Cart, error) {
	return s.mutate(ctx, scope, func(c *models.Cart) {
		c.ChangeQuantity(productID, delta)
	})
}

// RemoveItem deletes the matching line outright, regardless of quantity.
func (s *Service) RemoveItem(ctx context.Context, scope, productID string) (models.Cart, error) {
	return s.mutate(ctx, scope, func(c *models.Cart) {
		c.Remove(productID)
	})
}

func (s *Service) mutate(ctx context.Context, scope string, apply func(*models.Cart)) (models.Cart, error) {
	for attempt := 0; attempt < mutateAttempts; attempt++ {
		cart, version, err := s.store.LoadCart(ctx, scope)
		if err != nil {
			return models.Cart{}, err
		}

		apply(&cart)

		err = s.store.SaveCart(ctx, scope, cart, version)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, storage.ErrVersionConflict) {
			return models.Cart{}, err
		}
		s.log.Debug("cart version conflict, replaying", "scope", scope, "attempt", attempt+1)
	}
	return models.Cart{}, fmt.Errorf("cart mutation for scope %s: %w", scope, storage.ErrVersionConflict)
}
