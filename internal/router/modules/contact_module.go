package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/souravverma/portfolio-backend/internal/container"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
	handlers "github.com/souravverma/portfolio-backend/internal/interface/http"
	"github.com/souravverma/portfolio-backend/internal/interface/middleware"
	"github.com/souravverma/portfolio-backend/pkg/helpers"
)

// ContactModule wires the public contact form and the admin message workflow.
// Public: POST /api/contact
// Protected: GET /api/admin/messages, GET /api/admin/stats,
// GET /api/admin/messages/search, PATCH /api/admin/messages/:id/status,
// DELETE /api/admin/messages/:id

type ContactModule struct {
	Handler *handlers.ContactHandler
	Admins  repo.AdminRepository
	JWT     *helpers.JWTManager
}

func NewContact(h *handlers.ContactHandler, admins repo.AdminRepository, jwt *helpers.JWTManager) *ContactModule {
	return &ContactModule{Handler: h, Admins: admins, JWT: jwt}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	// Tight limit on the public form; local traffic bypasses it in development.
	submitLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.POST("/contact", submitLimiter, m.Handler.Submit)

	auth := rg.Group("/admin")
	auth.Use(middleware.Auth(m.Admins, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil))
	{
		auth.GET("/messages", m.Handler.List)
		auth.GET("/stats", m.Handler.Stats)
		auth.GET("/messages/search", m.Handler.Search)
		auth.PATCH("/messages/:id/status", m.Handler.UpdateStatus)
		auth.DELETE("/messages/:id", m.Handler.Delete)
	}
}
