package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulearn/ai-teacher-api/internal/container"
	handlers "github.com/edulearn/ai-teacher-api/internal/interface/http"
	"github.com/edulearn/ai-teacher-api/internal/interface/middleware"
)

// AuthModule wires the public authentication endpoints.
// POST /api/v1/auth/register, POST /api/v1/auth/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
