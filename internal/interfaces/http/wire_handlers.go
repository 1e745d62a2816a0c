package http

import (
	"github.com/opsportal/opsportal/internal/interfaces/http/handlers"
	bookingHandlers "github.com/opsportal/opsportal/internal/interfaces/http/handlers/booking"
	helpdeskHandlers "github.com/opsportal/opsportal/internal/interfaces/http/handlers/helpdesk"
	roomHandlers "github.com/opsportal/opsportal/internal/interfaces/http/handlers/room"
	sopHandlers "github.com/opsportal/opsportal/internal/interfaces/http/handlers/sop"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler  *handlers.HealthHandler
	roomHandler    *roomHandlers.RoomHandler
	meetingHandler *bookingHandlers.MeetingHandler
	sopHandler     *sopHandlers.SopHandler
	ticketHandler  *helpdeskHandlers.TicketHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(c.db, c.redis),
		roomHandler:   roomHandlers.NewRoomHandler(u.roomUC, log),
		meetingHandler: bookingHandlers.NewMeetingHandler(
			u.createMeetingUC,
			u.updateMeetingUC,
			u.deleteMeetingUC,
			u.getMeetingUC,
			u.listMeetingsUC,
			u.changeStatusUC,
			u.listStatusHistoryUC,
			u.attendeesUC,
			u.availabilityUC,
			log,
		),
		sopHandler: sopHandlers.NewSopHandler(
			u.createSopUC,
			u.uploadVersionUC,
			u.getSopUC,
			u.listSopsUC,
			u.listVersionsUC,
			u.deleteSopUC,
			log,
		),
		ticketHandler: helpdeskHandlers.NewTicketHandler(
			u.createTicketUC,
			u.getTicketUC,
			u.listTicketsUC,
			u.updateTicketUC,
			u.setAssignmentsUC,
			u.ticketLifecycle,
			log,
		),
	}
}
