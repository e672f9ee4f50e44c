package router

import "github.com/gin-gonic/gin"

// Module is a feature area that registers its own routes on the shared API
// group. Each module owns its middleware chain (auth, rate limits) so the
// registry stays free of per-route policy.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects modules and mounts them under a common prefix.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api/v1")}
}

// Use adds middleware applied to the whole API group ahead of any module
// routes.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll mounts group middleware, then every module, in the order they
// were added.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
