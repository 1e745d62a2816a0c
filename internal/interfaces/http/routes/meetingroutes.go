package routes

import (
	"github.com/gin-gonic/gin"

	bookinghandlers "github.com/opsportal/opsportal/internal/interfaces/http/handlers/booking"
	"github.com/opsportal/opsportal/internal/interfaces/http/middleware"
	"github.com/opsportal/opsportal/internal/infrastructure/permission"
)

type MeetingRouteConfig struct {
	MeetingHandler       *bookinghandlers.MeetingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupMeetingRoutes(engine *gin.Engine, config *MeetingRouteConfig) {
	meetings := engine.Group("/meetings")
	meetings.Use(config.AuthMiddleware.RequireAuth())
	{
		meetings.POST("", config.MeetingHandler.CreateMeeting)
		meetings.GET("", config.MeetingHandler.ListMeetings)

		// Specific action endpoints must come BEFORE /:id
		meetings.POST("/:id/status",
			config.PermissionMiddleware.RequirePermission(permission.ResourceMeetings, permission.ActionApprove),
			config.MeetingHandler.ChangeStatus)
		meetings.GET("/:id/statuses", config.MeetingHandler.ListStatusHistory)
		meetings.POST("/:id/attendees", config.MeetingHandler.AddAttendee)
		meetings.PUT("/:id/attendees", config.MeetingHandler.ReplaceAttendees)
		meetings.DELETE("/:id/attendees/:user_id", config.MeetingHandler.RemoveAttendee)

		meetings.GET("/:id", config.MeetingHandler.GetMeeting)
		meetings.PUT("/:id", config.MeetingHandler.UpdateMeeting)
		meetings.DELETE("/:id", config.MeetingHandler.DeleteMeeting)
	}
}
