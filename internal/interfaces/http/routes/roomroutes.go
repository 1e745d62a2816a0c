package routes

import (
	"github.com/gin-gonic/gin"

	bookinghandlers "github.com/opsportal/opsportal/internal/interfaces/http/handlers/booking"
	roomhandlers "github.com/opsportal/opsportal/internal/interfaces/http/handlers/room"
	"github.com/opsportal/opsportal/internal/interfaces/http/middleware"
	"github.com/opsportal/opsportal/internal/infrastructure/permission"
)

type RoomRouteConfig struct {
	RoomHandler          *roomhandlers.RoomHandler
	MeetingHandler       *bookinghandlers.MeetingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupRoomRoutes(engine *gin.Engine, config *RoomRouteConfig) {
	write := config.PermissionMiddleware.RequirePermission(permission.ResourceRooms, permission.ActionWrite)

	rooms := engine.Group("/rooms")
	rooms.Use(config.AuthMiddleware.RequireAuth())
	{
		rooms.POST("", write, config.RoomHandler.CreateRoom)
		rooms.GET("", config.RoomHandler.ListRooms)

		// Specific action endpoints must come BEFORE /:id
		rooms.GET("/:id/availability", config.MeetingHandler.CheckAvailability)

		rooms.GET("/:id", config.RoomHandler.GetRoom)
		rooms.PUT("/:id", write, config.RoomHandler.UpdateRoom)
		rooms.DELETE("/:id", write, config.RoomHandler.DeleteRoom)
	}
}
