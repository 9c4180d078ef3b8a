package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/flicky/eatsy-store/internal/middleware"
	"github.com/flicky/eatsy-store/internal/model"
	"github.com/flicky/eatsy-store/internal/store"
)

// Register mounts the store API on v1.
func Register(v1 *gin.RouterGroup, s *store.Store, allowedOrigins []string, log *slog.Logger) {
	authH := NewAuthHandler(s)
	productH := NewProductHandler(s)
	cartH := NewCartHandler(s)
	orderH := NewOrderHandler(s)
	statsH := NewStatsHandler(s)
	notificationH := NewNotificationHandler(s)
	stateH := NewStateHandler(s, allowedOrigins, log)

	staff := middleware.RequireRole(s, model.RoleKitchen, model.RoleAdmin)
	admin := middleware.RequireRole(s, model.RoleAdmin)

	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout)
	auth.GET("/me", middleware.RequireRole(s), authH.Me)

	v1.GET("/categories", productH.Categories)

	products := v1.Group("/products")
	products.GET("", productH.List)
	products.GET("/:id", productH.GetByID)
	products.POST("", admin, productH.Create)
	products.PUT("/:id", admin, productH.Update)
	products.DELETE("/:id", admin, productH.Delete)

	cart := v1.Group("/cart")
	cart.GET("", cartH.GetCart)
	cart.DELETE("", cartH.Clear)
	cart.POST("/items", cartH.AddItem)
	cart.PUT("/items/:productId", cartH.UpdateItem)
	cart.DELETE("/items/:productId", cartH.DeleteItem)

	orders := v1.Group("/orders")
	orders.POST("", orderH.PlaceOrder)
	orders.GET("", staff, orderH.ListOrders)
	orders.GET("/:id", staff, orderH.GetOrder)
	orders.PATCH("/:id/status", staff, orderH.UpdateStatus)
	orders.POST("/:id/advance", staff, orderH.Advance)
	orders.POST("/:id/cancel", staff, orderH.Cancel)

	v1.GET("/stats", admin, statsH.GetStats)

	notifications := v1.Group("/notifications")
	notifications.GET("", notificationH.List)
	notifications.POST("", notificationH.Create)
	notifications.DELETE("/:id", notificationH.Dismiss)

	v1.GET("/state", stateH.Snapshot)
	v1.GET("/events", stateH.Events)
}
