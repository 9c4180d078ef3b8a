package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/eatsy-store/internal/dto"
	"github.com/flicky/eatsy-store/internal/store"
)

type CartHandler struct {
	store *store.Store
}

func NewCartHandler(s *store.Store) *CartHandler {
	return &CartHandler{store: s}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, toCartResponse(h.store.Cart()))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.AddToCartByID(req.ProductID, req.Quantity, req.Notes); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCartResponse(h.store.Cart()))
}

// UpdateItem sets the quantity of a cart entry; zero or less removes it.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.UpdateCartItem(c.Param("productId"), *req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(h.store.Cart()))
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	h.store.RemoveFromCart(c.Param("productId"))
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.store.ClearCart()
	c.Status(http.StatusNoContent)
}
