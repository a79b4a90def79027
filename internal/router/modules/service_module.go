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

// ServiceModule wires the public offerings listing and the admin CRUD.
// Public: GET /api/services
// Protected: GET/POST /api/admin/services, PUT/DELETE /api/admin/services/:id

type ServiceModule struct {
	Handler *handlers.ServiceHandler
	Admins  repo.AdminRepository
	JWT     *helpers.JWTManager
}

func NewService(h *handlers.ServiceHandler, admins repo.AdminRepository, jwt *helpers.JWTManager) *ServiceModule {
	return &ServiceModule{Handler: h, Admins: admins, JWT: jwt}
}

func (m *ServiceModule) Register(rg *gin.RouterGroup) {
	rg.GET("/services", m.Handler.ListPublic)

	auth := rg.Group("/admin")
	auth.Use(middleware.Auth(m.Admins, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil))
	{
		auth.GET("/services", m.Handler.ListAll)
		auth.POST("/services", m.Handler.Create)
		auth.PUT("/services/:id", m.Handler.Update)
		auth.DELETE("/services/:id", m.Handler.Delete)
	}
}
