package handlers

import (
	"errors"
	"net/http"

	"chai_pos_backend/internal/services"
	"chai_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the revenue service.
type ReportHandler struct {
	revenueService services.RevenueService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.RevenueService) *ReportHandler {
	return &ReportHandler{revenueService: rs}
}

// GetRevenueReport handles period-bucketed revenue aggregation.
// ?period= accepts today, yesterday, week, month, year, all (default today).
func (h *ReportHandler) GetRevenueReport(c *gin.Context) {
	period := c.DefaultQuery("period", services.PeriodToday)

	report, err := h.revenueService.ReportFor(period)
	if err != nil {
		utils.LogError(err, "GetRevenueReport: Error from revenueService.ReportFor")
		if errors.Is(err, services.ErrUnknownPeriod) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build revenue report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetDashboardSummary provides the counter's at-a-glance numbers.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.revenueService.DashboardSummary()
	if err != nil {
		utils.LogError(err, "GetDashboardSummary: Error from revenueService.DashboardSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build dashboard summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}
