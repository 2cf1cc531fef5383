package handlers

import (
	"errors"
	"net/http"

	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/report"
	"home-services-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FinancialHandler handles HTTP requests for financial reports
type FinancialHandler struct {
	financialService *service.FinancialService
}

// NewFinancialHandler creates a new financial handler
func NewFinancialHandler(financialService *service.FinancialService) *FinancialHandler {
	return &FinancialHandler{
		financialService: financialService,
	}
}

func reportRequest(c *gin.Context) *service.ReportRequest {
	return &service.ReportRequest{
		Type:      report.Type(c.Query("type")),
		Range:     report.Range(c.DefaultQuery("range", string(report.RangeCurrentMonth))),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
}

// GetReport handles GET /reports
// @Summary Build a financial report
// @Description Render one of the four report shapes over the stored work orders
// @Tags reports
// @Accept json
// @Produce json
// @Param type query string true "Report type (summary, revenue, labor, work-orders)"
// @Param range query string false "Date range (current-month, last-month, current-quarter, current-year, custom)" default(current-month)
// @Param start_date query string false "Custom range start (YYYY-MM-DD)"
// @Param end_date query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} report.Report "Rendered report"
// @Failure 400 {object} map[string]interface{} "Invalid report parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports [get]
func (h *FinancialHandler) GetReport(c *gin.Context) {
	r, err := h.financialService.BuildReport(reportRequest(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidReportType) ||
			errors.Is(err, apperrors.ErrInvalidDateRange) ||
			isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, r)
}

// ExportReport handles GET /reports/export
// @Summary Export a financial report as CSV
// @Description Render the requested report and return it as a CSV download
// @Tags reports
// @Accept json
// @Produce text/csv
// @Param type query string true "Report type (summary, revenue, labor, work-orders)"
// @Param range query string false "Date range" default(current-month)
// @Param start_date query string false "Custom range start (YYYY-MM-DD)"
// @Param end_date query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} map[string]interface{} "Invalid report parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports/export [get]
func (h *FinancialHandler) ExportReport(c *gin.Context) {
	export, err := h.financialService.ExportCSV(reportRequest(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidReportType) ||
			errors.Is(err, apperrors.ErrInvalidDateRange) ||
			isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(export.Content))
}
