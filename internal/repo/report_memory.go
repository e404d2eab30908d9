package repo

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/grocery-pos/internal/models"
)

// InMemoryReportRepository computes the fixed aggregates from the in-memory
// product and sale repositories.
type InMemoryReportRepository struct {
	products *InMemoryProductRepository
	sales    *InMemorySaleRepository
}

func NewInMemoryReportRepository() *InMemoryReportRepository {
	return &InMemoryReportRepository{}
}

func (r *InMemoryReportRepository) SetRepositories(products *InMemoryProductRepository, sales *InMemorySaleRepository) {
	r.products = products
	r.sales = sales
}

func (r *InMemoryReportRepository) DashboardStats() (models.DashboardStats, error) {
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	stats := models.DashboardStats{
		LowStockProducts: []models.LowStockProduct{},
		TopProducts:      []models.TopProduct{},
	}

	for _, s := range r.sales.Sales() {
		if s.SaleDate.Truncate(24 * time.Hour).Equal(today) {
			stats.TodaySales += s.TotalAmount
			stats.TodayTransactions++
		}
		if s.SaleDate.Year() == now.Year() && s.SaleDate.Month() == now.Month() {
			stats.MonthlySales += s.TotalAmount
		}
	}

	products, _ := r.products.GetAll(ProductFilter{})
	stats.TotalProducts = len(products)

	lowStock := []models.Product{}
	for _, p := range products {
		if p.LowStock() {
			stats.LowStockCount++
			lowStock = append(lowStock, p)
		}
	}
	sort.Slice(lowStock, func(i, j int) bool { return lowStock[i].Quantity < lowStock[j].Quantity })
	if len(lowStock) > 10 {
		lowStock = lowStock[:10]
	}
	for _, p := range lowStock {
		stats.LowStockProducts = append(stats.LowStockProducts, models.LowStockProduct{
			ProductID:         p.ID,
			ProductName:       p.Name,
			Quantity:          p.Quantity,
			LowStockThreshold: p.LowStockThreshold,
		})
	}

	cutoff := today.AddDate(0, 0, -30)
	sold := map[int]*models.TopProduct{}
	order := []int{}
	for _, s := range r.sales.Sales() {
		if s.SaleDate.Before(cutoff) {
			continue
		}
		for _, item := range r.sales.Items(s.ID) {
			agg, ok := sold[item.ProductID]
			if !ok {
				name := ""
				if p, err := r.products.GetByID(item.ProductID); err == nil {
					name = p.Name
				}
				agg = &models.TopProduct{ProductName: name}
				sold[item.ProductID] = agg
				order = append(order, item.ProductID)
			}
			agg.TotalSold += item.Quantity
			agg.TotalRevenue += item.TotalPrice
		}
	}
	sort.Slice(order, func(i, j int) bool { return sold[order[i]].TotalSold > sold[order[j]].TotalSold })
	if len(order) > 5 {
		order = order[:5]
	}
	for _, id := range order {
		stats.TopProducts = append(stats.TopProducts, *sold[id])
	}

	return stats, nil
}

func (r *InMemoryReportRepository) SalesReport(reportType string) ([]models.SalesReportRow, error) {
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	switch reportType {
	case "daily", "monthly":
		byDay := map[time.Time]*models.SalesReportRow{}
		days := []time.Time{}
		for _, s := range r.sales.Sales() {
			day := s.SaleDate.Truncate(24 * time.Hour)
			if reportType == "daily" && !day.Equal(today) {
				continue
			}
			if reportType == "monthly" && (s.SaleDate.Year() != now.Year() || s.SaleDate.Month() != now.Month()) {
				continue
			}
			row, ok := byDay[day]
			if !ok {
				d := day
				row = &models.SalesReportRow{Date: &d}
				byDay[day] = row
				days = append(days, day)
			}
			row.TotalTransactions++
			row.TotalSales += s.TotalAmount
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
		report := []models.SalesReportRow{}
		for _, day := range days {
			report = append(report, *byDay[day])
		}
		return report, nil
	case "yearly":
		byMonth := map[int]*models.SalesReportRow{}
		months := []int{}
		for _, s := range r.sales.Sales() {
			if s.SaleDate.Year() != now.Year() {
				continue
			}
			m := int(s.SaleDate.Month())
			row, ok := byMonth[m]
			if !ok {
				month := m
				row = &models.SalesReportRow{Month: &month}
				byMonth[m] = row
				months = append(months, m)
			}
			row.TotalTransactions++
			row.TotalSales += s.TotalAmount
		}
		sort.Ints(months)
		report := []models.SalesReportRow{}
		for _, m := range months {
			report = append(report, *byMonth[m])
		}
		return report, nil
	default:
		return nil, ErrInvalidReportType
	}
}

func (r *InMemoryReportRepository) ChartData() (models.ChartData, error) {
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	weekCutoff := today.AddDate(0, 0, -7)
	monthCutoff := today.AddDate(0, -12, 0)

	data := models.ChartData{
		Weekly:  []models.WeeklySalesPoint{},
		Monthly: []models.MonthlySalesPoint{},
	}

	byDay := map[time.Time]float64{}
	days := []time.Time{}
	byMonth := map[int]float64{}
	months := []int{}

	for _, s := range r.sales.Sales() {
		if !s.SaleDate.Before(weekCutoff) {
			day := s.SaleDate.Truncate(24 * time.Hour)
			if _, ok := byDay[day]; !ok {
				days = append(days, day)
			}
			byDay[day] += s.TotalAmount
		}
		if !s.SaleDate.Before(monthCutoff) {
			m := int(s.SaleDate.Month())
			if _, ok := byMonth[m]; !ok {
				months = append(months, m)
			}
			byMonth[m] += s.TotalAmount
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	for _, day := range days {
		data.Weekly = append(data.Weekly, models.WeeklySalesPoint{Date: day, Sales: byDay[day]})
	}
	sort.Ints(months)
	for _, m := range months {
		data.Monthly = append(data.Monthly, models.MonthlySalesPoint{Month: m, Sales: byMonth[m]})
	}

	return data, nil
}
