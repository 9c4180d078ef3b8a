package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/eatsy-store/internal/dto"
	"github.com/flicky/eatsy-store/internal/store"
)

type OrderHandler struct {
	store *store.Store
}

func NewOrderHandler(s *store.Store) *OrderHandler {
	return &OrderHandler{store: s}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	id, err := h.store.PlaceOrder(c.Request.Context(), req.PaymentMethod, req.Notes)
	if err != nil {
		writeError(c, err)
		return
	}

	order, _ := h.store.Order(id)
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// ListOrders is the kitchen board: status=all hides cancelled orders.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q dto.KitchenQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.store.KitchenOrders(q.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderList(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.store.Order(c.Param("id"))
	if !ok {
		writeError(c, store.ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.store.UpdateOrderStatus(id, req.Status); err != nil {
		writeError(c, err)
		return
	}
	h.respondWithOrder(c, id)
}

func (h *OrderHandler) Advance(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.AdvanceOrder(id); err != nil {
		writeError(c, err)
		return
	}
	h.respondWithOrder(c, id)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.CancelOrder(id); err != nil {
		writeError(c, err)
		return
	}
	h.respondWithOrder(c, id)
}

func (h *OrderHandler) respondWithOrder(c *gin.Context, id string) {
	order, ok := h.store.Order(id)
	if !ok {
		writeError(c, store.ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}
