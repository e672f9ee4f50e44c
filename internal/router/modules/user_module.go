package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulearn/ai-teacher-api/internal/container"
	"github.com/edulearn/ai-teacher-api/internal/domain/repository"
	handlers "github.com/edulearn/ai-teacher-api/internal/interface/http"
	"github.com/edulearn/ai-teacher-api/internal/interface/middleware"
	"github.com/edulearn/ai-teacher-api/pkg/helpers"
)

// UserModule wires the protected user endpoints.
// GET/PUT /api/v1/users/me, GET /api/v1/users/:id (self or superuser),
// GET /api/v1/users (superuser only)
type UserModule struct {
	Handler *handlers.UserHandler
	Users   repository.UserRepository
	Tokens  *helpers.TokenManager
}

func NewUserModule(h *handlers.UserHandler, users repository.UserRepository, tokens *helpers.TokenManager) *UserModule {
	return &UserModule{Handler: h, Users: users, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Users, m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/me", m.Handler.Me)
		auth.PUT("/me", m.Handler.UpdateMe)
		auth.GET("", middleware.RequireSuperuser(), m.Handler.List)
		auth.GET("/:id", m.Handler.GetByID)
	}
}
