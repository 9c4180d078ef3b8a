package repository

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flicky/eatsy-store/internal/model"
)

// SeedProvider supplies the initial catalog and order history. Each call
// returns fresh copies.
type SeedProvider interface {
	Products() []model.Product
	Orders() []model.Order
}

type staticSeed struct {
	products []model.Product
	orders   []model.Order
}

func NewSeed(products []model.Product, orders []model.Order) SeedProvider {
	return &staticSeed{products: CloneProducts(products), orders: CloneOrders(orders)}
}

func (s *staticSeed) Products() []model.Product { return CloneProducts(s.products) }
func (s *staticSeed) Orders() []model.Order     { return CloneOrders(s.orders) }

func CloneProducts(in []model.Product) []model.Product {
	out := make([]model.Product, len(in))
	for i, p := range in {
		out[i] = CloneProduct(p)
	}
	return out
}

func CloneProduct(p model.Product) model.Product {
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		p.UpdatedAt = &t
	}
	return p
}

func CloneOrders(in []model.Order) []model.Order {
	out := make([]model.Order, len(in))
	for i, o := range in {
		out[i] = CloneOrder(o)
	}
	return out
}

func CloneOrder(o model.Order) model.Order {
	o.Items = CloneItems(o.Items)
	return o
}

func CloneItems(in []model.CartItem) []model.CartItem {
	out := slices.Clone(in)
	for i := range out {
		out[i].Product = CloneProduct(out[i].Product)
	}
	return out
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// NewMockSeed returns the demo menu and three orders already in the kitchen
// pipeline, timestamped relative to now.
func NewMockSeed(now time.Time) SeedProvider {
	photo := func(id string) string {
		return "https://images.pexels.com/photos/" + id + "/pexels-photo-" + id + ".jpeg?auto=compress&cs=tinysrgb&w=500"
	}

	products := []model.Product{
		{ID: "1", Name: "Hambúrguer Clássico", Description: "Pão brioche, carne 180g, queijo, alface, tomate, cebola roxa e molho especial",
			Price: price("28.90"), Image: photo("1639557"), Category: "Hambúrgueres", Available: true, CreatedAt: now},
		{ID: "2", Name: "Hambúrguer BBQ", Description: "Pão brioche, carne 180g, bacon, queijo cheddar, cebola caramelizada e molho BBQ",
			Price: price("32.90"), Image: photo("1556909"), Category: "Hambúrgueres", Available: true, CreatedAt: now},
		{ID: "3", Name: "Pizza Margherita", Description: "Molho de tomate, mussarela, manjericão fresco e azeite extravirgem",
			Price: price("45.90"), Image: photo("2147491"), Category: "Pizzas", Available: true, CreatedAt: now},
		{ID: "4", Name: "Pizza Pepperoni", Description: "Molho de tomate, mussarela e fatias generosas de pepperoni",
			Price: price("48.90"), Image: photo("2619967"), Category: "Pizzas", Available: true, CreatedAt: now},
		{ID: "5", Name: "Salada Caesar", Description: "Alface romana, croutons, queijo parmesão, molho caesar e peito de frango grelhado",
			Price: price("24.90"), Image: photo("2097090"), Category: "Saladas", Available: true, CreatedAt: now},
		{ID: "6", Name: "Refrigerante 350ml", Description: "Coca-Cola, Guaraná, Fanta ou Sprite",
			Price: price("5.90"), Image: photo("2775860"), Category: "Bebidas", Available: true, CreatedAt: now},
		{ID: "7", Name: "Suco Natural 400ml", Description: "Laranja, limão, acerola ou maracujá",
			Price: price("8.90"), Image: photo("96974"), Category: "Bebidas", Available: true, CreatedAt: now},
		{ID: "8", Name: "Brownie com Sorvete", Description: "Brownie de chocolate quente com sorvete de baunilha e calda de chocolate",
			Price: price("16.90"), Image: photo("291528"), Category: "Sobremesas", Available: true, CreatedAt: now},
	}

	orders := []model.Order{
		{
			ID: "ord001", CustomerID: "1", CustomerName: "João Silva", CustomerEmail: "joao@email.com",
			Items: []model.CartItem{
				{Product: products[0], Quantity: 2, Notes: "Sem cebola, por favor"},
				{Product: products[5], Quantity: 2},
			},
			Total:         price("69.60"),
			Status:        model.OrderStatusPreparing,
			PaymentStatus: model.PaymentStatusCompleted,
			PaymentMethod: model.PaymentMethodCard,
			CreatedAt:     now.Add(-30 * time.Minute),
			UpdatedAt:     now.Add(-15 * time.Minute),
			Notes:         "Entrega rápida, por favor",
		},
		{
			ID: "ord002", CustomerID: "2", CustomerName: "Maria Santos", CustomerEmail: "maria@email.com",
			Items: []model.CartItem{
				{Product: products[2], Quantity: 1},
				{Product: products[6], Quantity: 1},
			},
			Total:         price("54.80"),
			Status:        model.OrderStatusReady,
			PaymentStatus: model.PaymentStatusCompleted,
			PaymentMethod: model.PaymentMethodPix,
			CreatedAt:     now.Add(-45 * time.Minute),
			UpdatedAt:     now.Add(-10 * time.Minute),
		},
		{
			ID: "ord003", CustomerID: "3", CustomerName: "Pedro Oliveira", CustomerEmail: "pedro@email.com",
			Items: []model.CartItem{
				{Product: products[4], Quantity: 1},
				{Product: products[7], Quantity: 1},
			},
			Total:         price("41.80"),
			Status:        model.OrderStatusDelivered,
			PaymentStatus: model.PaymentStatusCompleted,
			PaymentMethod: model.PaymentMethodCard,
			CreatedAt:     now.Add(-2 * time.Hour),
			UpdatedAt:     now.Add(-time.Hour),
		},
	}

	return NewSeed(products, orders)
}
