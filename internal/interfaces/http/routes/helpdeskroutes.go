package routes

import (
	"github.com/gin-gonic/gin"

	helpdeskhandlers "github.com/opsportal/opsportal/internal/interfaces/http/handlers/helpdesk"
	"github.com/opsportal/opsportal/internal/interfaces/http/middleware"
	"github.com/opsportal/opsportal/internal/infrastructure/permission"
)

type HelpdeskRouteConfig struct {
	TicketHandler        *helpdeskhandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupHelpdeskRoutes(engine *gin.Engine, config *HelpdeskRouteConfig) {
	tickets := engine.Group("/helpdesk/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific action endpoints must come BEFORE /:id
		tickets.PUT("/:id/assignments",
			config.PermissionMiddleware.RequirePermission(permission.ResourceTickets, permission.ActionAssign),
			config.TicketHandler.SetAssignments)
		tickets.POST("/:id/trash", config.TicketHandler.TrashTicket)
		tickets.POST("/:id/restore", config.TicketHandler.RestoreTicket)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
