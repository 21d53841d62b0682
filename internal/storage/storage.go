package storage

import (
	"context"
	"errors"

	"github.com/okoval/handmade-shop/internal/models"
)

// The two entry keys mirror the old storefront's localStorage keys: one
// blob for the live cart, one for the append-only order log.
const (
	cartKey   = "handmade_cart"
	ordersKey = "handmade_orders"
)

// ErrVersionConflict is returned by SaveCart when the stored cart changed
// since the version the caller read. Callers re-read and replay.
var ErrVersionConflict = errors.New("storage: cart version conflict")

// Store owns the two persisted collections. Callers never touch the
// underlying store directly; everything goes through this interface.
//
// Load operations fail soft: a missing entry or a blob that no longer
// decodes as the expected shape yields an empty collection (and version 0
// for carts), never an error the caller has to handle. Decode failures
// are logged and swallowed.
type Store interface {
	// LoadCart returns the persisted cart for a scope plus the version
	// tag SaveCart must present to overwrite it.
	LoadCart(ctx context.Context, scope string) (models.Cart, int64, error)
	// SaveCart serializes and overwrites the whole cart blob. version 0
	// asserts "no cart exists yet"; otherwise the stored version must
	// match or ErrVersionConflict is returned.
	SaveCart(ctx context.Context, scope string, cart models.Cart, version int64) error
	// ClearCart removes the cart entry for a scope.
	ClearCart(ctx context.Context, scope string) error
	// AppendOrder reads the existing order log, appends, and writes the
	// whole list back.
	AppendOrder(ctx context.Context, scope string, order models.Order) error
	// LoadOrders returns the append-only order log for a scope.
	LoadOrders(ctx context.Context, scope string) ([]models.Order, error)
}
