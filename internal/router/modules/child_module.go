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

// ChildModule wires the ownership-scoped child profile CRUD endpoints under
// /api/v1/children. Every route runs behind the authenticator; handlers
// scope all data access to the authenticated parent.
type ChildModule struct {
	Handler *handlers.ChildHandler
	Users   repository.UserRepository
	Tokens  *helpers.TokenManager
}

func NewChildModule(h *handlers.ChildHandler, users repository.UserRepository, tokens *helpers.TokenManager) *ChildModule {
	return &ChildModule{Handler: h, Users: users, Tokens: tokens}
}

func (m *ChildModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/children")
	auth.Use(middleware.Auth(m.Users, m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
