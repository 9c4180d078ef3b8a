package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/eatsy-store/internal/dto"
	"github.com/flicky/eatsy-store/internal/model"
	"github.com/flicky/eatsy-store/internal/payment"
	"github.com/flicky/eatsy-store/internal/store"
)

// writeError maps store errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, store.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, store.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrProductUnavailable), errors.Is(err, store.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrEmptyCart),
		errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrInvalidPrice),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, payment.ErrUnsupportedMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment failed"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request cancelled"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func toUserResponse(u *model.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductList(products []model.Product) dto.ProductListResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return dto.ProductListResponse{Products: out, Total: len(out)}
}

func toCartItems(items []model.CartItem) []dto.CartItemResponse {
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.CartItemResponse{
			Product:  toProductResponse(item.Product),
			Quantity: item.Quantity,
			Notes:    item.Notes,
			Subtotal: item.Subtotal(),
		})
	}
	return out
}

func toCartResponse(items []model.CartItem) dto.CartResponse {
	resp := dto.CartResponse{Items: toCartItems(items)}
	for _, item := range resp.Items {
		resp.Total = resp.Total.Add(item.Subtotal)
		resp.Count += item.Quantity
	}
	return resp
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         toCartItems(o.Items),
		Total:         o.Total,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toOrderList(orders []model.Order) dto.OrderListResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return dto.OrderListResponse{Orders: out, Total: len(out)}
}

func toNotifications(ns []model.Notification) []dto.NotificationResponse {
	out := make([]dto.NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, dto.NotificationResponse{ID: n.ID, Message: n.Message, Type: n.Type})
	}
	return out
}

func toStateResponse(st store.State) dto.StateResponse {
	return dto.StateResponse{
		User:          toUserResponse(st.CurrentUser),
		Products:      toProductList(st.Products).Products,
		Orders:        toOrderList(st.Orders).Orders,
		Cart:          toCartResponse(st.Cart),
		Loading:       st.Loading,
		Notifications: toNotifications(st.Notifications),
	}
}
