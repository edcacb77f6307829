package document

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
	docs := protected.Group("/documents")
	{
		docs.POST("", h.Upload)
		docs.GET("", h.ListMine)
		docs.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	docs := admin.Group("/documents")
	{
		docs.GET("", h.List)
		docs.POST("/:id/review", h.Review)
		docs.POST("/bulk-review", h.BulkReview)
	}
}

// Upload godoc
// @Summary Upload an evidence document
// @Description Accepts PDF, common image types and Word documents up to 10 MiB.
// @Tags Documents
// @Accept multipart/form-data
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param document_type formData string true "certificate | portfolio | business_license | identity_card | other"
// @Param description formData string false "Optional description"
// @Success 201 {object} map[string]interface{}
// @Failure 400,413 {object} map[string]interface{}
// @Router /documents [post]
func (h *Handler) Upload(c *gin.Context) {
	userID := middleware.UserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No file provided")
		return
	}
	docType := domain.DocumentType(c.PostForm("document_type"))
	description := c.PostForm("description")

	doc, err := h.service.Upload(c.Request.Context(), userID, fileHeader, docType, description)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidMimeType), errors.Is(err, ErrInvalidDocumentType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to upload document")
		}
		return
	}

	response.Success(c, http.StatusCreated, doc)
}

func (h *Handler) ListMine(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	docs, err := h.service.ListByUser(c.Request.Context(), middleware.UserID(c), domain.DocumentStatus(filter.Status))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list documents")
		return
	}
	response.Success(c, http.StatusOK, docs)
}

// Delete godoc
// @Summary Delete an own document (object + row)
// @Tags Documents
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Router /documents/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrDocumentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete document")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

// List godoc
// @Summary List documents (admin)
// @Tags Admin
// @Security BearerAuth
// @Param status query string false "pending | approved | rejected"
// @Router /admin/documents [get]
func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	docs, total, err := h.service.ListByStatus(c.Request.Context(), domain.DocumentStatus(filter.Status), filter.Page, filter.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list documents")
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
	response.Success(c, http.StatusOK, ListResponse{Documents: docs, Total: total, Page: page, Limit: limit})
}

// Review godoc
// @Summary Review a single document (admin)
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Param request body ReviewRequest true "approved or rejected, reason required on reject"
// @Router /admin/documents/{id}/review [post]
func (h *Handler) Review(c *gin.Context) {
	var body ReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	doc, err := h.service.Review(c.Request.Context(), c.Param("id"), middleware.UserID(c), domain.DocumentStatus(body.Status), body.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrDocumentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrNotPending):
			response.Error(c, http.StatusConflict, "NOT_PENDING", err.Error())
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrReasonRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "REVIEW_FAILED", "Failed to review document")
		}
		return
	}
	response.Success(c, http.StatusOK, doc)
}

// BulkReview godoc
// @Summary Review a batch of documents (admin)
// @Description Best-effort batch: the response carries a per-id result list.
// @Tags Admin
// @Security BearerAuth
// @Param request body BulkReviewRequest true "Document ids and target status"
// @Router /admin/documents/bulk-review [post]
func (h *Handler) BulkReview(c *gin.Context) {
	var body BulkReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	results, err := h.service.BulkReview(c.Request.Context(), body.DocumentIDs, middleware.UserID(c), domain.DocumentStatus(body.Status), body.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrReasonRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "REVIEW_FAILED", "Failed to review documents")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}
