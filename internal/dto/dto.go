package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flicky/eatsy-store/internal/model"
)

// --- Auth ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// --- Product ---

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Image       string          `json:"image"`
	Category    string          `json:"category" binding:"required"`
	Available   *bool           `json:"available"`
}

type MenuQuery struct {
	Category string `form:"category,default=all"`
	All      bool   `form:"all"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Notes     string `json:"notes"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Notes    string          `json:"notes,omitempty"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
	Count int                `json:"count"`
}

// --- Order ---

type PlaceOrderRequest struct {
	PaymentMethod model.PaymentMethod `json:"payment_method"`
	Notes         string              `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

type KitchenQuery struct {
	Status string `form:"status,default=all"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Items         []CartItemResponse  `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Status        model.OrderStatus   `json:"status"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// --- Stats ---

type DailyRevenueResponse struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type StatsResponse struct {
	TotalOrders       int                       `json:"total_orders"`
	TotalRevenue      decimal.Decimal           `json:"total_revenue"`
	AverageOrderValue decimal.Decimal           `json:"average_order_value"`
	OrdersByStatus    map[model.OrderStatus]int `json:"orders_by_status"`
	RevenueByDay      []DailyRevenueResponse    `json:"revenue_by_day"`
	RecentOrders      []OrderResponse           `json:"recent_orders"`
}

// --- Notifications and state ---

type NotificationRequest struct {
	Message string                 `json:"message" binding:"required"`
	Type    model.NotificationType `json:"type" binding:"omitempty,oneof=success error info"`
}

type NotificationResponse struct {
	ID      string                 `json:"id"`
	Message string                 `json:"message"`
	Type    model.NotificationType `json:"type"`
}

type StateResponse struct {
	User          *UserResponse          `json:"user"`
	Products      []ProductResponse      `json:"products"`
	Orders        []OrderResponse        `json:"orders"`
	Cart          CartResponse           `json:"cart"`
	Loading       bool                   `json:"loading"`
	Notifications []NotificationResponse `json:"notifications"`
}
