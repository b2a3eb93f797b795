package httpHandler

import (
	"net/http"
	"time"

	"health-server/entities"
	"health-server/exporters"
	"health-server/services"
	"health-server/usecases"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reports *usecases.ReportUseCase
	tips    []string
	log     *zap.Logger
}

func NewReportHandler(useCase *usecases.ReportUseCase, tips []string, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: useCase, tips: tips, log: log}
}

// Dashboard handles GET /api/v1/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	dash, err := h.reports.Dashboard(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dash})
}

// Report handles GET /api/v1/reports
func (h *ReportHandler) Report(c *gin.Context) {
	report, err := h.reports.Assemble(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// Export handles GET /api/v1/reports/export
func (h *ReportHandler) Export(c *gin.Context) {
	report, err := h.reports.Assemble(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	data, err := exporters.XLSX(report)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+exporters.ReportFilename(report.User.Email))
	c.Data(http.StatusOK, exporters.XLSXContentType, data)
}

// TipOfTheDay handles GET /api/v1/health-tips/today
func (h *ReportHandler) TipOfTheDay(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"date": now.Format(entities.DateLayout),
		"tip":  services.TipOfTheDay(now, h.tips),
	}})
}
