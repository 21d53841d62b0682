package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/okoval/handmade-shop/internal/models"
	"github.com/okoval/handmade-shop/internal/storage"
)

var (
	// ErrEmptyCart aborts checkout before any customer data is looked at.
	ErrEmptyCart = errors.New("checkout: cart is empty")
	// ErrInvalidCustomer aborts checkout when any of the three required
	// customer fields is blank. Nothing is persisted on this path.
	ErrInvalidCustomer = errors.New("checkout: customer details incomplete")
)

// dateLayout renders the order date for display only. Orders are never
// sorted by this string.
const dateLayout = "02.01.2006, 15:04:05"

// Service runs the checkout flow: guard, validate, snapshot, persist,
// clear. Each step can abort the whole flow; there are no retries and no
// partial persistence.
type Service struct {
	store    storage.Store
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

func NewService(store storage.Store, log *slog.Logger) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// PlaceOrder turns the current cart into an immutable order record.
//
// The order is appended to the log and the cart cleared on success. Both
// writes are fire-and-forget toward the caller: a failure is logged and
// the flow continues, so the visitor always gets their confirmation.
func (s *Service) PlaceOrder(ctx context.Context, scope string, customer models.Customer) (models.Order, error) {
	cart, _, err := s.store.LoadCart(ctx, scope)
	if err != nil {
		return models.Order{}, err
	}
	if len(cart.Lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	if err := s.validate.Struct(customer); err != nil {
		return models.Order{}, fmt.Errorf("%w: %s", ErrInvalidCustomer, err)
	}

	now := s.now()
	order := models.Order{
		ID:       now.UnixMilli(),
		Ref:      uuid.NewString(),
		Date:     now.Format(dateLayout),
		Customer: customer,
		Items:    cart.Snapshot(),
		Total:    cart.Total(),
	}

	if err := s.store.AppendOrder(ctx, scope, order); err != nil {
		s.log.Warn("order log write failed", "scope", scope, "order", order.Ref, "error", err)
	}
	if err := s.store.ClearCart(ctx, scope); err != nil {
		s.log.Warn("cart clear after checkout failed", "scope", scope, "error", err)
	}

	return order, nil
}
