package handlers

import (
	"errors"
	"net/http"

	repo "github.com/rogerio-castellano/grocery-pos/internal/repo"
)

// GetDashboardStatsHandler godoc
// @Summary Dashboard summary block
// @Tags reports
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/stats [get]
func GetDashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := reportRepo.DashboardStats()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetSalesReportHandler godoc
// @Summary Aggregate sales report
// @Tags reports
// @Produce json
// @Param type query string false "daily, monthly or yearly (default daily)"
// @Success 200 {array} models.SalesReportRow
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/reports/sales [get]
func GetSalesReportHandler(w http.ResponseWriter, r *http.Request) {
	reportType := r.URL.Query().Get("type")
	if reportType == "" {
		reportType = "daily"
	}

	report, err := reportRepo.SalesReport(reportType)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidReportType) {
			errorJSON(w, http.StatusBadRequest, "type must be daily, monthly or yearly")
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// GetChartDataHandler godoc
// @Summary Chart series for the reports page
// @Tags reports
// @Produce json
// @Success 200 {object} models.ChartData
// @Failure 500 {object} ErrorResponse
// @Router /api/reports/chart-data [get]
func GetChartDataHandler(w http.ResponseWriter, r *http.Request) {
	data, err := reportRepo.ChartData()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, data)
}
