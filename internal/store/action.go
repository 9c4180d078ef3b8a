package store

import (
	"time"

	"github.com/flicky/eatsy-store/internal/model"
)

// Action is a state transition request. The set of actions is closed: only
// the types in this file satisfy it.
type Action interface {
	action()
}

type SetUser struct{ User *model.User }

type SetProducts struct{ Products []model.Product }

type AddProduct struct{ Product model.Product }

type UpdateProduct struct{ Product model.Product }

type DeleteProduct struct{ ID string }

type AddToCart struct {
	Product  model.Product
	Quantity int
	Notes    string
}

type UpdateCartItem struct {
	ProductID string
	Quantity  int
}

type RemoveFromCart struct{ ProductID string }

type ClearCart struct{}

type AddOrder struct{ Order model.Order }

type UpdateOrderStatus struct {
	OrderID string
	Status  model.OrderStatus
	At      time.Time
}

type SetLoading struct{ Loading bool }

type AddNotification struct{ Notification model.Notification }

type RemoveNotification struct{ ID string }

func (SetUser) action()            {}
func (SetProducts) action()        {}
func (AddProduct) action()         {}
func (UpdateProduct) action()      {}
func (DeleteProduct) action()      {}
func (AddToCart) action()          {}
func (UpdateCartItem) action()     {}
func (RemoveFromCart) action()     {}
func (ClearCart) action()          {}
func (AddOrder) action()           {}
func (UpdateOrderStatus) action()  {}
func (SetLoading) action()         {}
func (AddNotification) action()    {}
func (RemoveNotification) action() {}
