package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pastesytony/pos-api/internal/application/service"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles register summary and shift close endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles GET /register/summary. An optional ?date=YYYY-MM-DD
// selects a past day; the default is today.
func (h *ReportHandler) Summary(c *gin.Context) {
	day := time.Now()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		day = parsed
	}

	summary, err := h.reportService.Summary(c.Request.Context(), GetBranchID(c), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Register summary retrieved", summary)
}

// CloseShift handles POST /register/close-shift
func (h *ReportHandler) CloseShift(c *gin.Context) {
	output, err := h.reportService.CloseShift(c.Request.Context(), GetBranchID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift closed", output)
}
