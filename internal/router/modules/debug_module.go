package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulearn/ai-teacher-api/internal/container"
	"github.com/edulearn/ai-teacher-api/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Metrics endpoint (expvar), rate-limited per IP. Private-network
	// callers (service checks, internal scrapers) bypass the limit.
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
