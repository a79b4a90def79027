package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/souravverma/portfolio-backend/config"
	"github.com/souravverma/portfolio-backend/internal/infrastructure/postgres"
	"github.com/souravverma/portfolio-backend/pkg/response"
)

type HealthHandler struct {
	DB  *pgxpool.Pool
	Cfg *config.Config
}

func NewHealthHandler(db *pgxpool.Pool, cfg *config.Config) *HealthHandler {
	return &HealthHandler{DB: db, Cfg: cfg}
}

// Check GET /api/health
// Always answers 200; database connectivity is reported in the body so the
// endpoint stays useful while the store is down.
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "disconnected"
	connected := false
	if h.DB != nil {
		if err := postgres.Ping(c.Request.Context(), h.DB); err == nil {
			dbStatus = "connected"
			connected = true
		}
	}
	response.Success(c, http.StatusOK, gin.H{
		"status": "OK",
		"database": gin.H{
			"status":    dbStatus,
			"connected": connected,
		},
		"environment": h.Cfg.Env,
		"port":        h.Cfg.Port,
	}, "healthy", nil)
}
