package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kidulajumba254/invoice-management-system/internal/logger"
	"github.com/kidulajumba254/invoice-management-system/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *logger.Logger
}

func NewDashboardHandler(service service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

// GetDashboard handles GET /v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	// lenient: an unparseable limit falls back to the configured default
	limit, _ := strconv.Atoi(c.Query("limit"))

	resp, err := h.service.GetDashboard(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStatistics handles GET /v1/dashboard/statistics
func (h *DashboardHandler) GetStatistics(c *gin.Context) {
	resp, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
