package handlers

import (
	portssvc "github.com/custos-app/custos-backend/internal/core/ports/services"
	"github.com/custos-app/custos-backend/internal/middleware"
	"github.com/custos-app/custos-backend/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup /api routes behind the auth middleware
	setupAPIRoutes(r, cfg, services)
}

// setupAPIRoutes configures the /api group and delegates to specific entity
// route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUploadRoutes(api, services.Importacao)
	registerResumoRoutes(api, services.Resumo)
	registerResponsavelRoutes(api, services.Responsavel)
	registerFornecedorConfigRoutes(api, services.FornecedorConfig)
	registerTransacaoRoutes(api, services.Transacao)
}
