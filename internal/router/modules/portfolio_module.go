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

// PortfolioModule wires the public showcase listing and the admin CRUD.
// Public: GET /api/portfolio
// Protected: GET/POST /api/admin/portfolio, PUT/DELETE /api/admin/portfolio/:id,
// POST /api/admin/portfolio/upload

type PortfolioModule struct {
	Handler *handlers.PortfolioHandler
	Upload  *handlers.UploadHandler
	Admins  repo.AdminRepository
	JWT     *helpers.JWTManager
}

func NewPortfolio(h *handlers.PortfolioHandler, up *handlers.UploadHandler, admins repo.AdminRepository, jwt *helpers.JWTManager) *PortfolioModule {
	return &PortfolioModule{Handler: h, Upload: up, Admins: admins, JWT: jwt}
}

func (m *PortfolioModule) Register(rg *gin.RouterGroup) {
	rg.GET("/portfolio", m.Handler.ListPublic)

	auth := rg.Group("/admin")
	auth.Use(middleware.Auth(m.Admins, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil))
	{
		auth.GET("/portfolio", m.Handler.ListAll)
		auth.POST("/portfolio", m.Handler.Create)
		auth.POST("/portfolio/upload", m.Upload.Upload)
		auth.PUT("/portfolio/:id", m.Handler.Update)
		auth.DELETE("/portfolio/:id", m.Handler.Delete)
	}
}
