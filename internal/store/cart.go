package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/flicky/eatsy-store/internal/model"
)

// AddToCart merges product into the cart. An existing entry for the same
// product keeps its notes and grows by quantity.
func (s *Store) AddToCart(product model.Product, quantity int, notes string) error {
	if quantity < 1 {
		s.metrics.ObserveIntent("add_to_cart", "invalid")
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if !product.Available {
		s.metrics.ObserveIntent("add_to_cart", "unavailable")
		return ErrProductUnavailable
	}

	s.Dispatch(AddToCart{Product: product, Quantity: quantity, Notes: notes})
	s.Notify(fmt.Sprintf("%s added to cart", product.Name), model.NotificationSuccess)
	s.metrics.ObserveIntent("add_to_cart", "ok")
	s.log.Debug("cart item added", "product_id", product.ID, "quantity", quantity)
	return nil
}

// AddToCartByID resolves productID against the catalog before adding it.
func (s *Store) AddToCartByID(productID string, quantity int, notes string) error {
	product, ok := s.Product(productID)
	if !ok {
		s.metrics.ObserveIntent("add_to_cart", "not_found")
		return ErrProductNotFound
	}
	return s.AddToCart(product, quantity, notes)
}

// UpdateCartItem sets the quantity for productID. Non-positive quantities
// remove the entry; unknown ids are ignored.
func (s *Store) UpdateCartItem(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}
	s.Dispatch(UpdateCartItem{ProductID: productID, Quantity: quantity})
	s.metrics.ObserveIntent("update_cart_item", "ok")
}

// RemoveFromCart drops the entry for productID. The info notification is
// emitted whether or not anything was removed.
func (s *Store) RemoveFromCart(productID string) {
	s.Dispatch(RemoveFromCart{ProductID: productID})
	s.Notify("Item removed from cart", model.NotificationInfo)
	s.metrics.ObserveIntent("remove_from_cart", "ok")
}

func (s *Store) ClearCart() {
	s.Dispatch(ClearCart{})
	s.metrics.ObserveIntent("clear_cart", "ok")
}

func (s *Store) Cart() []model.CartItem {
	return s.Snapshot().Cart
}

func (s *Store) CartTotal() decimal.Decimal {
	return cartTotal(s.Cart())
}

// CartCount is the number of units in the cart, not the number of entries.
func (s *Store) CartCount() int {
	n := 0
	for _, item := range s.Cart() {
		n += item.Quantity
	}
	return n
}

func cartTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
