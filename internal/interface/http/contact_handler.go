package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/souravverma/portfolio-backend/config"
	"github.com/souravverma/portfolio-backend/internal/application"
	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
	"github.com/souravverma/portfolio-backend/pkg/response"
	"github.com/souravverma/portfolio-backend/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger, cfg *config.Config) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger, Cfg: cfg}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,phone"`
	Service string `json:"service" binding:"required,oneof='Logo Design' 'Branding' 'Social Media Creatives' 'Posters & Ads' 'Other'"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Submit POST /api/contact (public)
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	m, err := h.Svc.Submit(c.Request.Context(), application.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: entity.ContactService(req.Service),
		Message: req.Message,
	})
	if err != nil {
		h.serverError(c, err, "Failed to send message. Please try again.")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":        m.ID,
		"name":      m.Name,
		"createdAt": m.CreatedAt.Format(time.RFC3339),
	}, "Message sent successfully! I'll get back to you soon.", nil)
}

// List GET /api/admin/messages (auth required)
// Query params: status, service, search, page, limit.
func (h *ContactHandler) List(c *gin.Context) {
	f := repo.ContactFilter{
		Status:  c.Query("status"),
		Service: c.Query("service"),
		Search:  c.Query("search"),
		Page:    intQuery(c, "page", 1),
		Limit:   intQuery(c, "limit", 10),
	}

	items, pg, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		h.serverError(c, err, "Failed to fetch messages")
		return
	}
	response.Success(c, http.StatusOK, contactViews(items), "ok", pg)
}

// Stats GET /api/admin/stats (auth required)
func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch stats")
		return
	}
	response.Success(c, http.StatusOK, stats, "ok", nil)
}

// UpdateStatus PATCH /api/admin/messages/:id/status (auth required)
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	m, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			response.Error[any](c, http.StatusBadRequest, "Invalid status value", nil)
		case errors.Is(err, repo.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, "Message not found", nil)
		default:
			h.serverError(c, err, "Failed to update message")
		}
		return
	}
	response.Success(c, http.StatusOK, contactView(m), "Status updated", nil)
}

// Delete DELETE /api/admin/messages/:id (auth required)
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Message not found", nil)
			return
		}
		h.serverError(c, err, "Failed to delete message")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Message deleted successfully", nil)
}

// Search GET /api/admin/messages/search?q=...&limit=... (auth required)
// Full-text search over name, email and message via Elasticsearch.
func (h *ContactHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "Search query is required", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, intQuery(c, "limit", 10))
	if err != nil {
		h.serverError(c, err, "Search failed")
		return
	}
	response.Success(c, http.StatusOK, hits, "ok", gin.H{"count": len(hits)})
}

func (h *ContactHandler) serverError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	var details any
	if h.Cfg != nil && h.Cfg.IsDevelopment() {
		details = err.Error()
	}
	response.Error[any](c, http.StatusInternalServerError, msg, details)
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
