// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aura/internal/agent"
	"aura/internal/http/handlers"
	"aura/internal/http/middleware"
	"aura/internal/infra"
	"aura/internal/modules/catalog"
)

// RouterDeps carries everything the HTTP surface needs. Catalog may be nil
// when no Places key is configured.
type RouterDeps struct {
	Agent    *agent.Router
	Catalog  *catalog.Service
	Verifier infra.TokenVerifier
}

// NewRouter builds the gin engine with middleware and route registration.
func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	agentHandler := handlers.NewAgentHandler(deps.Agent)
	api.POST("/agent/invoke", agentHandler.Invoke)

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	api.POST("/catalog/search", catalogHandler.Search)

	return r
}
