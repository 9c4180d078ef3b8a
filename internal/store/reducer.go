package store

import (
	"slices"

	"github.com/flicky/eatsy-store/internal/model"
	"github.com/flicky/eatsy-store/internal/repository"
)

// Reduce computes the state that results from applying a to s. It never
// modifies s: every collection it changes is copied first.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetUser:
		if a.User == nil {
			s.CurrentUser = nil
		} else {
			u := *a.User
			s.CurrentUser = &u
		}

	case SetProducts:
		s.Products = repository.CloneProducts(a.Products)

	case AddProduct:
		s.Products = append(slices.Clip(s.Products), repository.CloneProduct(a.Product))

	case UpdateProduct:
		s.Products = slices.Clone(s.Products)
		for i := range s.Products {
			if s.Products[i].ID == a.Product.ID {
				s.Products[i] = repository.CloneProduct(a.Product)
			}
		}

	case DeleteProduct:
		s.Products = slices.DeleteFunc(slices.Clone(s.Products), func(p model.Product) bool {
			return p.ID == a.ID
		})

	case AddToCart:
		idx := slices.IndexFunc(s.Cart, func(item model.CartItem) bool {
			return item.Product.ID == a.Product.ID
		})
		if idx >= 0 {
			s.Cart = slices.Clone(s.Cart)
			s.Cart[idx].Quantity += a.Quantity
			break
		}
		s.Cart = append(slices.Clip(s.Cart), model.CartItem{
			Product:  repository.CloneProduct(a.Product),
			Quantity: a.Quantity,
			Notes:    a.Notes,
		})

	case UpdateCartItem:
		s.Cart = slices.Clone(s.Cart)
		for i := range s.Cart {
			if s.Cart[i].Product.ID == a.ProductID {
				s.Cart[i].Quantity = a.Quantity
			}
		}

	case RemoveFromCart:
		s.Cart = slices.DeleteFunc(slices.Clone(s.Cart), func(item model.CartItem) bool {
			return item.Product.ID == a.ProductID
		})

	case ClearCart:
		s.Cart = nil

	case AddOrder:
		orders := make([]model.Order, 0, len(s.Orders)+1)
		orders = append(orders, repository.CloneOrder(a.Order))
		s.Orders = append(orders, s.Orders...)

	case UpdateOrderStatus:
		s.Orders = slices.Clone(s.Orders)
		for i := range s.Orders {
			if s.Orders[i].ID == a.OrderID {
				s.Orders[i].Status = a.Status
				s.Orders[i].UpdatedAt = a.At
			}
		}

	case SetLoading:
		s.Loading = a.Loading

	case AddNotification:
		s.Notifications = append(slices.Clip(s.Notifications), a.Notification)

	case RemoveNotification:
		s.Notifications = slices.DeleteFunc(slices.Clone(s.Notifications), func(n model.Notification) bool {
			return n.ID == a.ID
		})
	}
	return s
}
