package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flicky/eatsy-store/internal/model"
)

const revenueWindowDays = 7

const dayLayout = "2006-01-02"

// OrderStats summarises the order list. Revenue per day covers the seven UTC
// calendar days ending today, oldest first; days without orders are zero.
func (s *Store) OrderStats() model.OrderStats {
	return computeStats(s.Orders(), s.clock.Now())
}

func computeStats(orders []model.Order, now time.Time) model.OrderStats {
	stats := model.OrderStats{
		TotalOrders:       len(orders),
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		OrdersByStatus:    make(map[model.OrderStatus]int),
	}

	byDay := make(map[string]decimal.Decimal)
	for _, o := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		stats.OrdersByStatus[o.Status]++
		day := o.CreatedAt.UTC().Format(dayLayout)
		byDay[day] = byDay[day].Add(o.Total)
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.TotalOrders)))
	}

	today := now.UTC()
	stats.RevenueByDay = make([]model.DailyRevenue, 0, revenueWindowDays)
	for i := revenueWindowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(dayLayout)
		revenue, ok := byDay[day]
		if !ok {
			revenue = decimal.Zero
		}
		stats.RevenueByDay = append(stats.RevenueByDay, model.DailyRevenue{Date: day, Revenue: revenue})
	}
	return stats
}
