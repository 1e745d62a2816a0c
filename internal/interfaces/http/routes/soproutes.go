package routes

import (
	"github.com/gin-gonic/gin"

	sophandlers "github.com/opsportal/opsportal/internal/interfaces/http/handlers/sop"
	"github.com/opsportal/opsportal/internal/interfaces/http/middleware"
	"github.com/opsportal/opsportal/internal/infrastructure/permission"
)

type SopRouteConfig struct {
	SopHandler           *sophandlers.SopHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupSopRoutes(engine *gin.Engine, config *SopRouteConfig) {
	write := config.PermissionMiddleware.RequirePermission(permission.ResourceSops, permission.ActionWrite)

	sops := engine.Group("/sops")
	sops.Use(config.AuthMiddleware.RequireAuth())
	{
		sops.POST("", write, config.SopHandler.CreateSop)
		sops.GET("", config.SopHandler.ListSops)

		sops.POST("/:id/versions", write, config.SopHandler.UploadVersion)
		sops.GET("/:id/versions", config.SopHandler.ListVersions)

		sops.GET("/:id", config.SopHandler.GetSop)
		sops.DELETE("/:id", write, config.SopHandler.DeleteSop)
	}
}
