package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/smedge/backend/internal/application/report"
)

// ReportHandler handles finance report endpoints
type ReportHandler struct {
	BaseHandler
	service *reportapp.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/receipts-by-client", h.ReceiptsByClient)
		reports.GET("/monthly", h.Monthly)
		reports.GET("/profit", h.Profit)
	}
}

// ReceiptsByClient handles GET /reports/receipts-by-client
func (h *ReportHandler) ReceiptsByClient(c *gin.Context) {
	h.Success(c, h.service.ReceiptsByClient())
}

// Monthly handles GET /reports/monthly
func (h *ReportHandler) Monthly(c *gin.Context) {
	h.Success(c, h.service.ReceiptsByMonth())
}

// Profit handles GET /reports/profit with an optional client filter
func (h *ReportHandler) Profit(c *gin.Context) {
	h.Success(c, h.service.Profit(c.Query("client")))
}
