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

// AuthModule wires the admin login and profile routes.
// Public: POST /api/admin/login
// Protected: GET /api/admin/me

type AuthModule struct {
	Handler *handlers.AuthHandler
	Admins  repo.AdminRepository
	JWT     *helpers.JWTManager
}

func NewAuth(h *handlers.AuthHandler, admins repo.AdminRepository, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Admins: admins, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP

	admin := rg.Group("/admin")
	admin.POST("/login", loginLimiter, m.Handler.Login)

	auth := admin.Group("/")
	auth.Use(middleware.Auth(m.Admins, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
