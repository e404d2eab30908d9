package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

type PostgresReportRepository struct {
	db *sql.DB
}

func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

// DashboardStats gathers the dashboard summary block: today's takings and
// transaction count, catalog size, low-stock alerts, the current month's
// total, and the trailing-30-days best sellers.
func (r *PostgresReportRepository) DashboardStats() (models.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var stats models.DashboardStats

	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales
		WHERE sale_date::date = CURRENT_DATE`,
	).Scan(&stats.TodaySales, &stats.TodayTransactions)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to query today's sales: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&stats.TotalProducts)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to count products: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM products WHERE quantity <= low_stock_threshold`,
	).Scan(&stats.LowStockCount)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to count low stock: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, product_name, quantity, low_stock_threshold
		FROM products
		WHERE quantity <= low_stock_threshold
		ORDER BY quantity ASC
		LIMIT 10`)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to query low stock products: %w", err)
	}
	defer rows.Close()

	stats.LowStockProducts = []models.LowStockProduct{}
	for rows.Next() {
		var p models.LowStockProduct
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Quantity, &p.LowStockThreshold); err != nil {
			return models.DashboardStats{}, err
		}
		stats.LowStockProducts = append(stats.LowStockProducts, p)
	}
	if err := rows.Err(); err != nil {
		return models.DashboardStats{}, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE date_trunc('month', sale_date) = date_trunc('month', CURRENT_DATE)`,
	).Scan(&stats.MonthlySales)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to query monthly sales: %w", err)
	}

	topRows, err := r.db.QueryContext(ctx, `
		SELECT p.product_name, SUM(si.quantity) AS total_sold, SUM(si.total_price) AS total_revenue
		FROM sale_items si
		JOIN products p ON si.product_id = p.product_id
		JOIN sales s ON si.sale_id = s.sale_id
		WHERE s.sale_date >= CURRENT_DATE - INTERVAL '30 days'
		GROUP BY p.product_id, p.product_name
		ORDER BY total_sold DESC
		LIMIT 5`)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to query top products: %w", err)
	}
	defer topRows.Close()

	stats.TopProducts = []models.TopProduct{}
	for topRows.Next() {
		var p models.TopProduct
		if err := topRows.Scan(&p.ProductName, &p.TotalSold, &p.TotalRevenue); err != nil {
			return models.DashboardStats{}, err
		}
		stats.TopProducts = append(stats.TopProducts, p)
	}
	return stats, topRows.Err()
}

// SalesReport returns one of the three fixed aggregate shapes: today's
// single row, the current month grouped by day, or the current year grouped
// by month.
func (r *PostgresReportRepository) SalesReport(reportType string) ([]models.SalesReportRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var query string
	byMonth := false
	switch reportType {
	case "daily":
		query = `
			SELECT sale_date::date AS date, COUNT(*), COALESCE(SUM(total_amount), 0)
			FROM sales
			WHERE sale_date::date = CURRENT_DATE
			GROUP BY sale_date::date`
	case "monthly":
		query = `
			SELECT sale_date::date AS date, COUNT(*), COALESCE(SUM(total_amount), 0)
			FROM sales
			WHERE date_trunc('month', sale_date) = date_trunc('month', CURRENT_DATE)
			GROUP BY sale_date::date
			ORDER BY date`
	case "yearly":
		byMonth = true
		query = `
			SELECT EXTRACT(MONTH FROM sale_date)::int AS month, COUNT(*), COALESCE(SUM(total_amount), 0)
			FROM sales
			WHERE date_trunc('year', sale_date) = date_trunc('year', CURRENT_DATE)
			GROUP BY month
			ORDER BY month`
	default:
		return nil, ErrInvalidReportType
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales report: %w", err)
	}
	defer rows.Close()

	report := []models.SalesReportRow{}
	for rows.Next() {
		var row models.SalesReportRow
		if byMonth {
			var month int
			if err := rows.Scan(&month, &row.TotalTransactions, &row.TotalSales); err != nil {
				return nil, err
			}
			row.Month = &month
		} else {
			var date time.Time
			if err := rows.Scan(&date, &row.TotalTransactions, &row.TotalSales); err != nil {
				return nil, err
			}
			row.Date = &date
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// ChartData returns the two fixed chart series: daily totals for the
// trailing 7 days and monthly totals for the trailing 12 months.
func (r *PostgresReportRepository) ChartData() (models.ChartData, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var data models.ChartData

	weeklyRows, err := r.db.QueryContext(ctx, `
		SELECT sale_date::date AS date, COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE sale_date >= CURRENT_DATE - INTERVAL '7 days'
		GROUP BY sale_date::date
		ORDER BY date`)
	if err != nil {
		return models.ChartData{}, fmt.Errorf("failed to query weekly chart data: %w", err)
	}
	defer weeklyRows.Close()

	data.Weekly = []models.WeeklySalesPoint{}
	for weeklyRows.Next() {
		var p models.WeeklySalesPoint
		if err := weeklyRows.Scan(&p.Date, &p.Sales); err != nil {
			return models.ChartData{}, err
		}
		data.Weekly = append(data.Weekly, p)
	}
	if err := weeklyRows.Err(); err != nil {
		return models.ChartData{}, err
	}

	monthlyRows, err := r.db.QueryContext(ctx, `
		SELECT EXTRACT(MONTH FROM sale_date)::int AS month, COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE sale_date >= CURRENT_DATE - INTERVAL '12 months'
		GROUP BY month
		ORDER BY month`)
	if err != nil {
		return models.ChartData{}, fmt.Errorf("failed to query monthly chart data: %w", err)
	}
	defer monthlyRows.Close()

	data.Monthly = []models.MonthlySalesPoint{}
	for monthlyRows.Next() {
		var p models.MonthlySalesPoint
		if err := monthlyRows.Scan(&p.Month, &p.Sales); err != nil {
			return models.ChartData{}, err
		}
		data.Monthly = append(data.Monthly, p)
	}
	return data, monthlyRows.Err()
}
