package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/souravverma/portfolio-backend/internal/application"
	"github.com/souravverma/portfolio-backend/internal/interface/middleware"
	"github.com/souravverma/portfolio-backend/pkg/response"
	"github.com/souravverma/portfolio-backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// Login POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			if h.Logger != nil {
				h.Logger.WithFields(logrus.Fields{"username": req.Username, "ip": clientIP(c)}).Warn("failed login attempt")
			}
			response.Error[any](c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token":     res.Token,
		"expiresAt": res.ExpiresAt.Format(time.RFC3339),
		"admin":     adminView(res.Admin),
	}, "Login successful", nil)
}

// Me GET /api/admin/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"id":       c.GetString(middleware.CtxAdminIDKey),
		"username": c.GetString(middleware.CtxAdminUsernameKey),
		"role":     c.GetString(middleware.CtxAdminRoleKey),
	}, "ok", nil)
}
