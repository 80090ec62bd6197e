// Package stats derives dashboard metrics from the order set.
package stats

import (
	"time"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/shopspring/decimal"
)

// Compute folds the order collection into summary metrics. Revenue counts
// delivered orders only; the average divides that revenue by the count of
// all orders, which is the dashboard's historical ratio. An empty
// collection yields all zeros.
func Compute(orders []domain.Order, now time.Time) domain.OrderStats {
	result := domain.OrderStats{
		TotalRevenue: decimal.Zero,
		AverageOrder: decimal.Zero,
	}

	year, month, day := now.Date()

	for _, order := range orders {
		result.TotalOrders++

		oy, om, od := order.CreatedAt.In(now.Location()).Date()
		if oy == year && om == month && od == day {
			result.TodayOrders++
		}

		if order.Status == domain.StatusDelivered {
			result.TotalRevenue = result.TotalRevenue.Add(order.Total)
		}
	}

	if result.TotalOrders > 0 {
		result.AverageOrder = result.TotalRevenue.Div(decimal.NewFromInt(int64(result.TotalOrders)))
	}

	return result
}
