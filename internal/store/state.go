package store

import (
	"slices"

	"github.com/flicky/eatsy-store/internal/model"
	"github.com/flicky/eatsy-store/internal/repository"
)

// State is the whole application tree. Values handed out by the Store are
// deep copies; mutating them never affects the store.
type State struct {
	// Version increases by one with every committed change.
	Version       uint64
	CurrentUser   *model.User
	Products      []model.Product
	Orders        []model.Order
	Cart          []model.CartItem
	Loading       bool
	Notifications []model.Notification
}

func (s State) Clone() State {
	out := State{
		Version:       s.Version,
		Products:      repository.CloneProducts(s.Products),
		Orders:        repository.CloneOrders(s.Orders),
		Cart:          repository.CloneItems(s.Cart),
		Loading:       s.Loading,
		Notifications: slices.Clone(s.Notifications),
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	return out
}
