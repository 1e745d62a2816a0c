package http

import (
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/domain/sop"
	"github.com/opsportal/opsportal/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo       directory.Repository
	roomRepo       room.Repository
	meetingRepo    meeting.Repository
	statusRepo     meeting.StatusRepository
	attendeeRepo   meeting.AttendeeRepository
	sopRepo        sop.Repository
	lineageRepo    sop.LineageRepository
	ticketRepo     helpdesk.TicketRepository
	assignmentRepo helpdesk.AssignmentRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:       repository.NewUserDirectoryRepository(c.db),
		roomRepo:       repository.NewRoomRepository(c.db),
		meetingRepo:    repository.NewMeetingRepository(c.db),
		statusRepo:     repository.NewMeetingStatusRepository(c.db),
		attendeeRepo:   repository.NewMeetingAttendeeRepository(c.db),
		sopRepo:        repository.NewSopRepository(c.db),
		lineageRepo:    repository.NewSopLineageRepository(c.db),
		ticketRepo:     repository.NewHelpdeskTicketRepository(c.db),
		assignmentRepo: repository.NewTicketAssignmentRepository(c.db),
	}
}
