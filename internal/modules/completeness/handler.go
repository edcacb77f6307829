package completeness

import (
	"errors"
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

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users/:id/completeness", h.Get)
}

// Get godoc
// @Summary Profile completeness score
// @Tags Users
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/completeness [get]
func (h *Handler) Get(c *gin.Context) {
	score, err := h.service.ScoreUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "SCORE_FAILED", "Failed to compute completeness")
		return
	}
	response.Success(c, http.StatusOK, score)
}
