package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/eatsy-store/internal/dto"
	"github.com/flicky/eatsy-store/internal/store"
)

const recentOrdersLimit = 5

type StatsHandler struct {
	store *store.Store
}

func NewStatsHandler(s *store.Store) *StatsHandler {
	return &StatsHandler{store: s}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats := h.store.OrderStats()

	days := make([]dto.DailyRevenueResponse, 0, len(stats.RevenueByDay))
	for _, d := range stats.RevenueByDay {
		days = append(days, dto.DailyRevenueResponse{Date: d.Date, Revenue: d.Revenue})
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalOrders:       stats.TotalOrders,
		TotalRevenue:      stats.TotalRevenue,
		AverageOrderValue: stats.AverageOrderValue,
		OrdersByStatus:    stats.OrdersByStatus,
		RevenueByDay:      days,
		RecentOrders:      toOrderList(h.store.RecentOrders(recentOrdersLimit)).Orders,
	})
}
