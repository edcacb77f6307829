package verification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"instructhub/internal/domain"
	"instructhub/internal/middleware"
	"instructhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/verification/requests")
	{
		group.POST("", h.Submit)
		group.POST("/resubmit", h.Resubmit)
		group.GET("/me", h.ListMine)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	group := admin.Group("/verification/requests")
	{
		group.GET("", h.List)
		group.POST("/:id/approve", h.Approve)
		group.POST("/:id/reject", h.Reject)
	}
	admin.POST("/users/:id/reconcile", h.Reconcile)
}

// Submit godoc
// @Summary Submit a verification request
// @Tags Verification
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 404,409 {object} map[string]interface{}
// @Router /verification/requests [post]
func (h *Handler) Submit(c *gin.Context) {
	userID := middleware.UserID(c)

	req, err := h.service.Submit(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, req)
}

// Resubmit godoc
// @Summary Resubmit after rejection
// @Description Removes the user's rejected requests and submits a fresh pending one.
// @Tags Verification
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 404,409 {object} map[string]interface{}
// @Router /verification/requests/resubmit [post]
func (h *Handler) Resubmit(c *gin.Context) {
	userID := middleware.UserID(c)

	req, err := h.service.Resubmit(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, req)
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := middleware.UserID(c)

	reqs, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list verification requests")
		return
	}
	response.Success(c, http.StatusOK, reqs)
}

// List godoc
// @Summary List verification requests (admin)
// @Tags Admin
// @Security BearerAuth
// @Param status query string false "pending | approved | rejected"
// @Router /admin/verification/requests [get]
func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	reqs, total, err := h.service.ListByStatus(c.Request.Context(), domain.VerificationStatus(filter.Status), filter.Page, filter.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list verification requests")
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	response.Success(c, http.StatusOK, ListResponse{Requests: reqs, Total: total, Page: page, Limit: limit})
}

// Approve godoc
// @Summary Approve a verification request (admin)
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Router /admin/verification/requests/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	reviewerID := middleware.UserID(c)

	req, err := h.service.Approve(c.Request.Context(), c.Param("id"), reviewerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

// Reject godoc
// @Summary Reject a verification request (admin)
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body RejectRequest true "Rejection reason"
// @Router /admin/verification/requests/{id}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	var body RejectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason is required")
		return
	}

	reviewerID := middleware.UserID(c)

	req, err := h.service.Reject(c.Request.Context(), c.Param("id"), reviewerID, body.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

// Reconcile godoc
// @Summary Recompute a user's trust flag from their latest request (admin)
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Router /admin/users/{id}/reconcile [post]
func (h *Handler) Reconcile(c *gin.Context) {
	verified, err := h.service.Reconcile(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user_id": c.Param("id"), "is_verified": verified})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRequestNotFound), errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrPendingRequestExists):
		response.Error(c, http.StatusConflict, "PENDING_EXISTS", err.Error())
	case errors.Is(err, ErrNotPending):
		response.Error(c, http.StatusConflict, "NOT_PENDING", err.Error())
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "VERIFICATION_FAILED", "Verification operation failed")
	}
}
