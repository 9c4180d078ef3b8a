package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/flicky/eatsy-store/internal/model"
	"github.com/flicky/eatsy-store/internal/payment"
)

const (
	guestCustomerID    = "guest"
	guestCustomerName  = "Cliente"
	guestCustomerEmail = "guest@email.com"
)

// PlaceOrder checks out the current cart. The cart is captured when the call
// starts, charged through the payment processor, and on success the order is
// prepended to the order list and the cart is cleared in one transition.
func (s *Store) PlaceOrder(ctx context.Context, method model.PaymentMethod, notes string) (string, error) {
	if method == "" {
		method = model.PaymentMethodCard
	}
	if !method.Valid() {
		s.metrics.ObserveIntent("place_order", "invalid")
		return "", fmt.Errorf("%w: %q", payment.ErrUnsupportedMethod, method)
	}
	if err := s.beginLoading(); err != nil {
		s.metrics.ObserveIntent("place_order", "busy")
		return "", err
	}

	snap := s.Snapshot()
	if len(snap.Cart) == 0 {
		s.endLoading()
		s.metrics.ObserveIntent("place_order", "empty")
		return "", ErrEmptyCart
	}
	total := cartTotal(snap.Cart)

	status, err := s.payments.Charge(ctx, total, method)
	if err != nil || status != model.PaymentStatusCompleted {
		s.endLoading()
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.metrics.ObserveIntent("place_order", "cancelled")
			return "", ctxErr
		}
		s.Notify("Payment failed", model.NotificationError)
		s.metrics.ObserveIntent("place_order", "payment_failed")
		s.log.Warn("payment failed", "status", status, "error", err)
		if err == nil {
			err = fmt.Errorf("payment status %s", status)
		}
		return "", fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	now := s.clock.Now()
	order := model.Order{
		ID:            uuid.NewString(),
		CustomerID:    guestCustomerID,
		CustomerName:  guestCustomerName,
		CustomerEmail: guestCustomerEmail,
		Items:         snap.Cart,
		Total:         total,
		Status:        model.OrderStatusPending,
		PaymentStatus: status,
		PaymentMethod: method,
		CreatedAt:     now,
		UpdatedAt:     now,
		Notes:         notes,
	}
	if u := snap.CurrentUser; u != nil {
		order.CustomerID, order.CustomerName, order.CustomerEmail = u.ID, u.Name, u.Email
	}

	s.endLoading(AddOrder{Order: order}, ClearCart{})
	s.Notify("Order placed successfully!", model.NotificationSuccess)
	s.metrics.ObserveIntent("place_order", "ok")
	s.metrics.ObserveOrder(total)
	s.log.Info("order placed", "order_id", order.ID, "total", total.StringFixed(2), "payment_method", method)
	return order.ID, nil
}

// UpdateOrderStatus overwrites the status of orderID. The caller is trusted
// to request a sensible transition; only unknown status values are refused.
// A missing order leaves the state untouched and returns ErrOrderNotFound.
func (s *Store) UpdateOrderStatus(orderID string, status model.OrderStatus) error {
	if !status.Valid() {
		s.metrics.ObserveIntent("update_order_status", "invalid")
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	found := false
	s.update(func(st State) (State, bool) {
		if indexOfOrder(st.Orders, orderID) < 0 {
			return st, false
		}
		found = true
		return Reduce(st, UpdateOrderStatus{OrderID: orderID, Status: status, At: s.clock.Now()}), true
	})

	s.Notify(fmt.Sprintf("Order status updated to: %s", status), model.NotificationInfo)
	if !found {
		s.metrics.ObserveIntent("update_order_status", "not_found")
		return ErrOrderNotFound
	}
	s.metrics.ObserveIntent("update_order_status", "ok")
	s.log.Debug("order status updated", "order_id", orderID, "status", status)
	return nil
}

// AdvanceOrder moves orderID one step along pending, preparing, ready,
// delivered and returns the new status.
func (s *Store) AdvanceOrder(orderID string) (model.OrderStatus, error) {
	var (
		next model.OrderStatus
		err  error
	)
	s.update(func(st State) (State, bool) {
		idx := indexOfOrder(st.Orders, orderID)
		if idx < 0 {
			err = ErrOrderNotFound
			return st, false
		}
		current := st.Orders[idx].Status
		n, ok := current.Next()
		if !ok {
			err = fmt.Errorf("%w: %s has no next status", ErrInvalidTransition, current)
			return st, false
		}
		next = n
		return Reduce(st, UpdateOrderStatus{OrderID: orderID, Status: n, At: s.clock.Now()}), true
	})
	if err != nil {
		s.metrics.ObserveIntent("advance_order", outcome(err))
		return "", err
	}

	s.Notify(fmt.Sprintf("Order status updated to: %s", next), model.NotificationInfo)
	s.metrics.ObserveIntent("advance_order", "ok")
	return next, nil
}

// CancelOrder cancels an order the kitchen has not finished yet.
func (s *Store) CancelOrder(orderID string) error {
	var err error
	s.update(func(st State) (State, bool) {
		idx := indexOfOrder(st.Orders, orderID)
		if idx < 0 {
			err = ErrOrderNotFound
			return st, false
		}
		switch current := st.Orders[idx].Status; current {
		case model.OrderStatusPending, model.OrderStatusPreparing:
		default:
			err = fmt.Errorf("%w: cannot cancel a %s order", ErrInvalidTransition, current)
			return st, false
		}
		return Reduce(st, UpdateOrderStatus{OrderID: orderID, Status: model.OrderStatusCancelled, At: s.clock.Now()}), true
	})
	if err != nil {
		s.metrics.ObserveIntent("cancel_order", outcome(err))
		return err
	}

	s.Notify("Order cancelled", model.NotificationInfo)
	s.metrics.ObserveIntent("cancel_order", "ok")
	s.log.Info("order cancelled", "order_id", orderID)
	return nil
}

func (s *Store) Order(orderID string) (model.Order, bool) {
	snap := s.Snapshot()
	idx := indexOfOrder(snap.Orders, orderID)
	if idx < 0 {
		return model.Order{}, false
	}
	return snap.Orders[idx], true
}

// Orders returns every order, most recent first.
func (s *Store) Orders() []model.Order {
	return s.Snapshot().Orders
}

// KitchenOrders filters orders for the kitchen board. "all" (or "") lists
// every order that is not cancelled. Results are sorted newest first.
func (s *Store) KitchenOrders(status string) ([]model.Order, error) {
	var keep func(model.Order) bool
	switch status {
	case "", "all":
		keep = func(o model.Order) bool { return o.Status != model.OrderStatusCancelled }
	default:
		st := model.OrderStatus(status)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
		keep = func(o model.Order) bool { return o.Status == st }
	}

	var out []model.Order
	for _, o := range s.Orders() {
		if keep(o) {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// RecentOrders returns up to n orders by creation time, newest first.
func (s *Store) RecentOrders(n int) []model.Order {
	orders := s.Orders()
	sortNewestFirst(orders)
	if n >= 0 && len(orders) > n {
		orders = orders[:n]
	}
	return orders
}

func sortNewestFirst(orders []model.Order) {
	slices.SortStableFunc(orders, func(a, b model.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func indexOfOrder(orders []model.Order, id string) int {
	return slices.IndexFunc(orders, func(o model.Order) bool { return o.ID == id })
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrProductNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	}
	return "error"
}
