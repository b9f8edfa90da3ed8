package checkout

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/angelmondragon/shopfront-client/internal/api"
	"github.com/angelmondragon/shopfront-client/internal/cart"
	"github.com/angelmondragon/shopfront-client/internal/notify"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/logger"
)

// OrderCreator is the slice of the order API checkout needs.
type OrderCreator interface {
	Create(ctx context.Context, draft api.OrderDraft, idempotencyKey string) (*api.OrderRecord, error)
}

// CartSource is the slice of the cart store checkout needs.
type CartSource interface {
	Items() []cart.LineItem
	IsEmpty() bool
	Clear()
}

// Coordinator drives a checkout submission end to end: form validation,
// draft assembly from a single cart snapshot, order creation, and the
// success/failure side effects. The cart is cleared only after the
// backend confirms the order.
type Coordinator interface {
	Submit(ctx context.Context, form Form) (*api.OrderRecord, error)
	InFlight() bool
}

type coordinator struct {
	orders    OrderCreator
	cart      CartSource
	notifier  *notify.Notifier
	onSuccess func(orderID string)
	logger    *logger.Logger
	inFlight  atomic.Bool
}

// NewCoordinator builds the checkout coordinator. onSuccess receives the
// server-assigned order id after a confirmed submission; pass nil when no
// navigation is wanted.
func NewCoordinator(
	orders OrderCreator,
	cartStore CartSource,
	notifier *notify.Notifier,
	onSuccess func(orderID string),
	logg *logger.Logger,
) (Coordinator, error) {
	if orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "order creator is required")
	}
	if cartStore == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart source is required")
	}
	if notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "notifier is required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger is required")
	}
	return &coordinator{
		orders:    orders,
		cart:      cartStore,
		notifier:  notifier,
		onSuccess: onSuccess,
		logger:    logg,
	}, nil
}

func (c *coordinator) InFlight() bool {
	return c.inFlight.Load()
}

// Submit runs one checkout attempt. A second call while one is in flight
// is rejected with a conflict instead of queueing, so a double click can
// never produce two orders. The idempotency key is minted per attempt and
// lets the backend dedupe a retried request.
func (c *coordinator) Submit(ctx context.Context, form Form) (*api.OrderRecord, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if c.cart.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "checkout already in progress")
	}
	defer c.inFlight.Store(false)

	draft := c.buildDraft(form, c.cart.Items())
	key := uuid.NewString()

	record, err := c.orders.Create(ctx, draft, key)
	if err != nil {
		c.logger.Warn(c.logger.WithField(ctx, "error", err.Error()), "checkout submission failed")
		c.notifier.Error(failureMessage(err))
		return nil, err
	}

	c.cart.Clear()
	c.logger.Info(c.logger.WithField(ctx, "order_id", record.OrderID), "order placed")
	c.notifier.Success("Order placed successfully")
	if c.onSuccess != nil {
		c.onSuccess(record.OrderID)
	}
	return record, nil
}

// buildDraft snapshots the cart exactly once per attempt; later cart
// edits cannot leak into an in-flight submission.
func (c *coordinator) buildDraft(form Form, lines []cart.LineItem) api.OrderDraft {
	items := make([]api.OrderLineItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, api.OrderLineItem{
			SKUCode:   line.SKUCode,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}
	return api.OrderDraft{
		CustomerName:    form.FullName,
		Email:           form.Email,
		Phone:           form.Phone,
		ShippingAddress: form.shippingAddress(),
		LineItems:       items,
	}
}

func failureMessage(err error) string {
	if pkgerrors.CodeOf(err) == pkgerrors.CodeInsufficientStock {
		return pkgerrors.MetadataFor(pkgerrors.CodeInsufficientStock).PublicMessage
	}
	return "Failed to place order"
}
