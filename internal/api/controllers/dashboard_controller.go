package controllers

import (
	"github.com/gin-gonic/gin"
	"tiffinbox/internal/services"
	"tiffinbox/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Analytics godoc
// @Summary Aggregate order, revenue and subscription metrics
// @Tags Dashboard
// @Produce json
// @Param range query string false "7days | 30days | 90days | year" default(30days)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/analytics [get]
func (d *DashboardController) Analytics(c *gin.Context) {
	report, err := d.dashboardService.BuildReport(c.Request.Context(), c.Query("range"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "")
}
