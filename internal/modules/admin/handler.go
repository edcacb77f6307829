package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"instructhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.GetStatistics)
}

// GetStatistics godoc
// @Summary Moderation queue statistics (admin)
// @Tags Admin
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/stats [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATS_FAILED", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
