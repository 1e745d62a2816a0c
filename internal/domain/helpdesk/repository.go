package helpdesk

import (
	"context"

	vo "github.com/opsportal/opsportal/internal/domain/helpdesk/valueobjects"
)

type TrashFilter string

const (
	// TrashExclude is the default listing: live, untrashed tickets.
	TrashExclude TrashFilter = ""
	TrashOnly    TrashFilter = "only"
	TrashInclude TrashFilter = "with"
)

type TicketFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	ReporterID *uint
	AssignedTo *uint
	Trash      TrashFilter
}

type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// GetByID returns nil, nil for missing or soft-deleted tickets. Trashed tickets are returned.
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// List never returns soft-deleted tickets.
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

type AssignmentRepository interface {
	// ListForTicket returns assignee ids in assignment order.
	ListForTicket(ctx context.Context, ticketID uint) ([]uint, error)
	// ReplaceForTicket deletes every row for the ticket and inserts userIDs with one
	// shared assigned_by and created_at. It must run inside the caller's transaction.
	ReplaceForTicket(ctx context.Context, ticketID uint, userIDs []uint, assignedBy uint) error
	// GetAssignmentsForTickets batch-loads ordered assignee ids keyed by ticket id.
	GetAssignmentsForTickets(ctx context.Context, ticketIDs []uint) (map[uint][]uint, error)
}
