package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Admin serves the administrator dashboard.
type Admin struct {
	dashboard DashboardService
}

func NewAdmin(dashboard DashboardService) *Admin {
	return &Admin{dashboard: dashboard}
}

func (h *Admin) Dashboard(c *gin.Context) {
	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
