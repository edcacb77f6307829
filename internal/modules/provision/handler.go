package provision

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"instructhub/internal/domain"
	"instructhub/internal/identity"
	"instructhub/internal/pkg/response"
	"instructhub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/users/:id/role-profile", h.EnsureRoleProfile)
}

// Register godoc
// @Summary Register a new account
// @Description Provisions an identity, base profile and role profile for an instructor or company.
// @Tags Auth
// @Param request body RegisterRequest true "Signup data"
// @Success 201 {object} map[string]interface{}
// @Failure 400,409,500 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid signup data", errs)
		return
	}

	id, err := h.service.Provision(c.Request.Context(), req.Email, req.Password, req.FullName, domain.UserType(req.UserType))
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrDuplicateEmail):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrPasswordTooShort), errors.Is(err, ErrInvalidUserType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "PROVISIONING_FAILED", "Failed to create account")
		}
		return
	}

	response.Success(c, http.StatusCreated, RegisterResponse{
		ID:       id.ID,
		Email:    id.Email,
		FullName: req.FullName,
		UserType: req.UserType,
	})
}

// EnsureRoleProfile godoc
// @Summary Repair a degraded account
// @Description Creates the missing role profile for an account whose role-profile step failed at signup.
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404,409 {object} map[string]interface{}
// @Router /admin/users/{id}/role-profile [post]
func (h *Handler) EnsureRoleProfile(c *gin.Context) {
	profileID := c.Param("id")

	err := h.service.EnsureRoleProfile(c.Request.Context(), profileID)
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		case errors.Is(err, ErrRoleProfileExists):
			response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "Role profile already exists")
		case errors.Is(err, ErrAdminHasNoRole):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "REPAIR_FAILED", "Failed to create role profile")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"profile_id": profileID})
}
