package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/souravverma/portfolio-backend/config"
	"github.com/souravverma/portfolio-backend/internal/application"
	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
	"github.com/souravverma/portfolio-backend/pkg/response"
	"github.com/souravverma/portfolio-backend/pkg/validation"
)

type PortfolioHandler struct {
	Svc    *application.PortfolioService
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewPortfolioHandler(svc *application.PortfolioService, logger *logrus.Logger, cfg *config.Config) *PortfolioHandler {
	return &PortfolioHandler{Svc: svc, Logger: logger, Cfg: cfg}
}

// portfolioRequest is shared by create and update. IsActive is a pointer so
// an omitted field can default to true instead of false.
type portfolioRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"required,min=1,max=500"`
	Category    string   `json:"category" binding:"required,oneof='Logo Design' 'Branding' 'Social Media Creatives' 'Posters & Ads'"`
	ImageURL    string   `json:"imageUrl" binding:"required,url"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"isActive"`
}

func (r *portfolioRequest) toEntity(id string) *entity.PortfolioItem {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &entity.PortfolioItem{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Category:    entity.PortfolioCategory(r.Category),
		ImageURL:    r.ImageURL,
		Tags:        r.Tags,
		IsActive:    active,
	}
}

// ListPublic GET /api/portfolio (public, active items only)
func (h *PortfolioHandler) ListPublic(c *gin.Context) {
	items, err := h.Svc.ListPublic(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch portfolio")
		return
	}
	response.Success(c, http.StatusOK, portfolioViews(items), "ok", gin.H{"count": len(items)})
}

// ListAll GET /api/admin/portfolio (auth required, includes inactive)
func (h *PortfolioHandler) ListAll(c *gin.Context) {
	items, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch portfolio")
		return
	}
	response.Success(c, http.StatusOK, portfolioViews(items), "ok", gin.H{"count": len(items)})
}

// Create POST /api/admin/portfolio (auth required)
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}
	item := req.toEntity("")
	if err := h.Svc.Create(c.Request.Context(), item); err != nil {
		h.serverError(c, err, "Failed to create portfolio item")
		return
	}
	response.Success(c, http.StatusCreated, portfolioView(item), "Portfolio item created", nil)
}

// Update PUT /api/admin/portfolio/:id (auth required, full replace)
func (h *PortfolioHandler) Update(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}
	item := req.toEntity(c.Param("id"))
	if err := h.Svc.Update(c.Request.Context(), item); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Portfolio item not found", nil)
			return
		}
		h.serverError(c, err, "Failed to update portfolio item")
		return
	}
	response.Success(c, http.StatusOK, portfolioView(item), "Portfolio item updated", nil)
}

// Delete DELETE /api/admin/portfolio/:id (auth required)
func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Portfolio item not found", nil)
			return
		}
		h.serverError(c, err, "Failed to delete portfolio item")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Portfolio item deleted", nil)
}

func (h *PortfolioHandler) serverError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	var details any
	if h.Cfg != nil && h.Cfg.IsDevelopment() {
		details = err.Error()
	}
	response.Error[any](c, http.StatusInternalServerError, msg, details)
}
