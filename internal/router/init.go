package router

import (
	"github.com/edulearn/ai-teacher-api/internal/application"
	"github.com/edulearn/ai-teacher-api/internal/container"
	pginfra "github.com/edulearn/ai-teacher-api/internal/infrastructure/postgres"
	handlers "github.com/edulearn/ai-teacher-api/internal/interface/http"
	"github.com/edulearn/ai-teacher-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	tokens := container.GetTokens()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	childRepo := pginfra.NewChildRepository(container.GetPGPool())

	userSvc := application.NewUserService(userRepo, tokens, container.GetRabbitPub(), logger, cfg.AppName)
	childSvc := application.NewChildService(childRepo, logger)

	authHandler := handlers.NewAuthHandler(userSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	childHandler := handlers.NewChildHandler(childSvc, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, userRepo, tokens))
	r.Add(modules.NewChildModule(childHandler, userRepo, tokens))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
