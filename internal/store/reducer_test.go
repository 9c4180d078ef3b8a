package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/eatsy-store/internal/model"
)

func reducerState() State {
	return State{
		Products: []model.Product{testProduct("1", "10.00"), testProduct("2", "2.50")},
		Orders: []model.Order{
			{ID: "o1", Status: model.OrderStatusPending, CreatedAt: testNow, UpdatedAt: testNow},
		},
		Cart: []model.CartItem{{Product: testProduct("1", "10.00"), Quantity: 1, Notes: "first"}},
		Notifications: []model.Notification{
			{ID: "n1", Message: "a", Type: model.NotificationInfo},
			{ID: "n2", Message: "b", Type: model.NotificationError},
		},
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	actions := []Action{
		SetUser{User: &model.User{ID: "1"}},
		AddProduct{Product: testProduct("3", "1.00")},
		UpdateProduct{Product: testProduct("1", "99.00")},
		DeleteProduct{ID: "2"},
		AddToCart{Product: testProduct("1", "10.00"), Quantity: 2},
		AddToCart{Product: testProduct("2", "2.50"), Quantity: 1},
		UpdateCartItem{ProductID: "1", Quantity: 7},
		RemoveFromCart{ProductID: "1"},
		ClearCart{},
		AddOrder{Order: model.Order{ID: "o2"}},
		UpdateOrderStatus{OrderID: "o1", Status: model.OrderStatusReady, At: testNow.Add(time.Minute)},
		SetLoading{Loading: true},
		AddNotification{Notification: model.Notification{ID: "n3"}},
		RemoveNotification{ID: "n1"},
	}

	for _, a := range actions {
		in := reducerState()
		want := in.Clone()
		_ = Reduce(in, a)
		assert.Equal(t, want, in, "%T", a)
	}
}

func TestReduce_AddToCartMergesByProduct(t *testing.T) {
	st := Reduce(reducerState(), AddToCart{Product: testProduct("1", "10.00"), Quantity: 2, Notes: "second"})
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 3, st.Cart[0].Quantity)
	assert.Equal(t, "first", st.Cart[0].Notes)

	st = Reduce(st, AddToCart{Product: testProduct("2", "2.50"), Quantity: 1, Notes: "ice"})
	require.Len(t, st.Cart, 2)
	assert.Equal(t, "2", st.Cart[1].Product.ID)
	assert.Equal(t, "ice", st.Cart[1].Notes)
}

func TestReduce_Cart(t *testing.T) {
	st := Reduce(reducerState(), UpdateCartItem{ProductID: "1", Quantity: 4})
	assert.Equal(t, 4, st.Cart[0].Quantity)

	st = Reduce(st, UpdateCartItem{ProductID: "missing", Quantity: 9})
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 4, st.Cart[0].Quantity)

	st = Reduce(st, RemoveFromCart{ProductID: "1"})
	assert.Empty(t, st.Cart)

	st = Reduce(reducerState(), ClearCart{})
	assert.Empty(t, st.Cart)
}

func TestReduce_Products(t *testing.T) {
	st := Reduce(reducerState(), AddProduct{Product: testProduct("3", "1.00")})
	require.Len(t, st.Products, 3)
	assert.Equal(t, "3", st.Products[2].ID)

	st = Reduce(st, UpdateProduct{Product: testProduct("1", "11.00")})
	assert.Equal(t, "11", st.Products[0].Price.String())

	st = Reduce(st, UpdateProduct{Product: testProduct("missing", "1.00")})
	assert.Len(t, st.Products, 3)

	st = Reduce(st, DeleteProduct{ID: "2"})
	require.Len(t, st.Products, 2)
	assert.Equal(t, "3", st.Products[1].ID)

	st = Reduce(st, SetProducts{Products: []model.Product{testProduct("9", "9.00")}})
	require.Len(t, st.Products, 1)
	assert.Equal(t, "9", st.Products[0].ID)
}

func TestReduce_Orders(t *testing.T) {
	st := Reduce(reducerState(), AddOrder{Order: model.Order{ID: "o2"}})
	require.Len(t, st.Orders, 2)
	assert.Equal(t, "o2", st.Orders[0].ID)

	at := testNow.Add(time.Hour)
	st = Reduce(st, UpdateOrderStatus{OrderID: "o1", Status: model.OrderStatusDelivered, At: at})
	assert.Equal(t, model.OrderStatusDelivered, st.Orders[1].Status)
	assert.Equal(t, at, st.Orders[1].UpdatedAt)

	before := st.Clone()
	st = Reduce(st, UpdateOrderStatus{OrderID: "missing", Status: model.OrderStatusReady, At: at})
	assert.Equal(t, before.Orders, st.Orders)
}

func TestReduce_UserLoadingNotifications(t *testing.T) {
	u := &model.User{ID: "1", Name: "Ana"}
	st := Reduce(reducerState(), SetUser{User: u})
	require.NotNil(t, st.CurrentUser)
	u.Name = "changed"
	assert.Equal(t, "Ana", st.CurrentUser.Name)

	st = Reduce(st, SetUser{})
	assert.Nil(t, st.CurrentUser)

	st = Reduce(st, SetLoading{Loading: true})
	assert.True(t, st.Loading)

	st = Reduce(st, AddNotification{Notification: model.Notification{ID: "n3"}})
	require.Len(t, st.Notifications, 3)
	assert.Equal(t, "n3", st.Notifications[2].ID)

	st = Reduce(st, RemoveNotification{ID: "n2"})
	require.Len(t, st.Notifications, 2)
	assert.Equal(t, "n1", st.Notifications[0].ID)
	assert.Equal(t, "n3", st.Notifications[1].ID)
}
