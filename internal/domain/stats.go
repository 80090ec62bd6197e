package domain

import "github.com/shopspring/decimal"

// OrderStats is derived from the full order set, never stored.
// TotalRevenue counts delivered orders only. AverageOrder divides that
// revenue by the count of all orders, pending and cancelled included,
// mirroring the dashboard's historical behavior.
type OrderStats struct {
	TotalOrders  int             `json:"total_orders"`
	TodayOrders  int             `json:"today_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AverageOrder decimal.Decimal `json:"average_order"`
}
