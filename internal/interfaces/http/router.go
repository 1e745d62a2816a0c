package http

import (
	"strings"

	"github.com/opsportal/opsportal/internal/infrastructure/ratelimit"
	"github.com/opsportal/opsportal/internal/interfaces/http/middleware"
	"github.com/opsportal/opsportal/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.RequestLogger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", c.hdlrs.healthHandler.Health)

	// Routes registered below are throttled, /health is not.
	policy := ratelimit.Policy{
		RequestsPerMinute: c.cfg.Server.RateLimit.RequestsPerMinute,
		RequestsPerHour:   c.cfg.Server.RateLimit.RequestsPerHour,
	}
	if c.limiter != nil && policy.Enabled() {
		c.engine.Use(middleware.RateLimit(c.limiter, policy, c.log))
	}

	if driver := strings.ToLower(c.cfg.Storage.Driver); driver == "" || driver == "local" {
		c.engine.Static(c.cfg.Storage.PublicURL, c.cfg.Storage.LocalDir)
	}

	routes.SetupRoomRoutes(c.engine, &routes.RoomRouteConfig{
		RoomHandler:          c.hdlrs.roomHandler,
		MeetingHandler:       c.hdlrs.meetingHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupMeetingRoutes(c.engine, &routes.MeetingRouteConfig{
		MeetingHandler:       c.hdlrs.meetingHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupSopRoutes(c.engine, &routes.SopRouteConfig{
		SopHandler:           c.hdlrs.sopHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupHelpdeskRoutes(c.engine, &routes.HelpdeskRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
