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

type ServiceHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewServiceHandler(svc *application.CatalogService, logger *logrus.Logger, cfg *config.Config) *ServiceHandler {
	return &ServiceHandler{Svc: svc, Logger: logger, Cfg: cfg}
}

// serviceRequest is shared by create and update. PriceINR is a pointer so a
// missing price is rejected instead of silently becoming zero; IsActive
// defaults to true when omitted.
type serviceRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"required,min=1,max=500"`
	PriceINR    *float64 `json:"priceINR" binding:"required,gte=0"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive"`
}

func (r *serviceRequest) toEntity(id string) *entity.Service {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &entity.Service{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		PriceINR:    *r.PriceINR,
		Features:    r.Features,
		IsActive:    active,
	}
}

// ListPublic GET /api/services (public, active offerings only)
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	items, err := h.Svc.ListPublic(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch services")
		return
	}
	response.Success(c, http.StatusOK, serviceViews(items), "ok", gin.H{"count": len(items)})
}

// ListAll GET /api/admin/services (auth required, includes inactive)
func (h *ServiceHandler) ListAll(c *gin.Context) {
	items, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch services")
		return
	}
	response.Success(c, http.StatusOK, serviceViews(items), "ok", gin.H{"count": len(items)})
}

// Create POST /api/admin/services (auth required)
func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}
	svc := req.toEntity("")
	if err := h.Svc.Create(c.Request.Context(), svc); err != nil {
		h.serverError(c, err, "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, serviceView(svc), "Service created", nil)
}

// Update PUT /api/admin/services/:id (auth required, full replace)
func (h *ServiceHandler) Update(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}
	svc := req.toEntity(c.Param("id"))
	if err := h.Svc.Update(c.Request.Context(), svc); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Service not found", nil)
			return
		}
		h.serverError(c, err, "Failed to update service")
		return
	}
	response.Success(c, http.StatusOK, serviceView(svc), "Service updated", nil)
}

// Delete DELETE /api/admin/services/:id (auth required)
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Service not found", nil)
			return
		}
		h.serverError(c, err, "Failed to delete service")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Service deleted", nil)
}

func (h *ServiceHandler) serverError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	var details any
	if h.Cfg != nil && h.Cfg.IsDevelopment() {
		details = err.Error()
	}
	response.Error[any](c, http.StatusInternalServerError, msg, details)
}
