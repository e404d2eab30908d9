package models

import "time"

// LowStockProduct is the trimmed product shape shown in dashboard alerts.
type LowStockProduct struct {
	ProductID         int    `json:"product_id"`
	ProductName       string `json:"product_name"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

// TopProduct aggregates units sold and revenue for one product.
type TopProduct struct {
	ProductName  string  `json:"product_name"`
	TotalSold    int     `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DashboardStats is the summary block rendered on the main dashboard.
type DashboardStats struct {
	TodaySales        float64           `json:"today_sales"`
	TodayTransactions int               `json:"today_transactions"`
	TotalProducts     int               `json:"total_products"`
	LowStockCount     int               `json:"low_stock_count"`
	LowStockProducts  []LowStockProduct `json:"low_stock_products"`
	MonthlySales      float64           `json:"monthly_sales"`
	TopProducts       []TopProduct      `json:"top_products"`
}

// SalesReportRow is one aggregate row of the sales report. Daily and
// monthly reports carry a date, the yearly report carries a month number.
type SalesReportRow struct {
	Date              *time.Time `json:"date,omitempty"`
	Month             *int       `json:"month,omitempty"`
	TotalTransactions int        `json:"total_transactions"`
	TotalSales        float64    `json:"total_sales"`
}

// WeeklySalesPoint is one day in the trailing-7-days chart series.
type WeeklySalesPoint struct {
	Date  time.Time `json:"date"`
	Sales float64   `json:"sales"`
}

// MonthlySalesPoint is one month in the trailing-12-months chart series.
type MonthlySalesPoint struct {
	Month int     `json:"month"`
	Sales float64 `json:"sales"`
}

// ChartData bundles the two fixed chart series.
type ChartData struct {
	Weekly  []WeeklySalesPoint  `json:"weekly"`
	Monthly []MonthlySalesPoint `json:"monthly"`
}
