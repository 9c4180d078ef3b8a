package store

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/flicky/eatsy-store/internal/model"
)

// AddProduct appends product to the catalog, assigning an id and creation
// time when they are missing. The stored product is returned.
func (s *Store) AddProduct(product model.Product) (model.Product, error) {
	if product.Price.IsNegative() {
		s.metrics.ObserveIntent("add_product", "invalid")
		return model.Product{}, fmt.Errorf("%w: %s", ErrInvalidPrice, product.Price)
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = s.clock.Now()
	}

	s.Dispatch(AddProduct{Product: product})
	s.metrics.ObserveIntent("add_product", "ok")
	s.log.Info("product added", "product_id", product.ID)
	return product, nil
}

// UpdateProduct replaces the catalog entry with the same id. Orders and
// carts keep the copy they already hold.
func (s *Store) UpdateProduct(product model.Product) (model.Product, error) {
	if product.Price.IsNegative() {
		s.metrics.ObserveIntent("update_product", "invalid")
		return model.Product{}, fmt.Errorf("%w: %s", ErrInvalidPrice, product.Price)
	}
	now := s.clock.Now()
	product.UpdatedAt = &now

	found := false
	s.update(func(st State) (State, bool) {
		if indexOfProduct(st.Products, product.ID) < 0 {
			return st, false
		}
		found = true
		return Reduce(st, UpdateProduct{Product: product}), true
	})
	if !found {
		s.metrics.ObserveIntent("update_product", "not_found")
		return model.Product{}, ErrProductNotFound
	}
	s.metrics.ObserveIntent("update_product", "ok")
	s.log.Info("product updated", "product_id", product.ID)
	return product, nil
}

// DeleteProduct removes a product from the catalog. Historical orders are
// not touched.
func (s *Store) DeleteProduct(id string) error {
	found := false
	s.update(func(st State) (State, bool) {
		if indexOfProduct(st.Products, id) < 0 {
			return st, false
		}
		found = true
		return Reduce(st, DeleteProduct{ID: id}), true
	})
	if !found {
		s.metrics.ObserveIntent("delete_product", "not_found")
		return ErrProductNotFound
	}
	s.metrics.ObserveIntent("delete_product", "ok")
	s.log.Info("product deleted", "product_id", id)
	return nil
}

func (s *Store) Product(id string) (model.Product, bool) {
	products := s.Products()
	idx := indexOfProduct(products, id)
	if idx < 0 {
		return model.Product{}, false
	}
	return products[idx], true
}

func (s *Store) Products() []model.Product {
	return s.Snapshot().Products
}

// Menu lists available products, optionally restricted to one category.
// An empty category or "all" means every category.
func (s *Store) Menu(category string) []model.Product {
	var out []model.Product
	for _, p := range s.Products() {
		if !p.Available {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct categories in catalog order.
func (s *Store) Categories() []string {
	var out []string
	for _, p := range s.Products() {
		if !slices.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	return out
}

func indexOfProduct(products []model.Product, id string) int {
	return slices.IndexFunc(products, func(p model.Product) bool { return p.ID == id })
}
