package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	"github.com/opsportal/opsportal/internal/infrastructure/email"
	"github.com/opsportal/opsportal/internal/shared/errors"
)

type memTicketRepository struct {
	tickets map[uint]*helpdesk.Ticket
	nextID  uint
	filters []helpdesk.TicketFilter
}

func newMemTicketRepository() *memTicketRepository {
	return &memTicketRepository{tickets: map[uint]*helpdesk.Ticket{}}
}

func (m *memTicketRepository) Create(_ context.Context, t *helpdesk.Ticket) error {
	m.nextID++
	m.tickets[m.nextID] = t
	return t.SetID(m.nextID)
}

func (m *memTicketRepository) Update(_ context.Context, t *helpdesk.Ticket) error {
	if _, ok := m.tickets[t.ID()]; !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *memTicketRepository) GetByID(_ context.Context, id uint) (*helpdesk.Ticket, error) {
	t, ok := m.tickets[id]
	if !ok || t.IsDeleted() {
		return nil, nil
	}
	return t, nil
}

func (m *memTicketRepository) List(_ context.Context, filter helpdesk.TicketFilter) ([]*helpdesk.Ticket, error) {
	m.filters = append(m.filters, filter)
	var out []*helpdesk.Ticket
	for id := uint(1); id <= m.nextID; id++ {
		t, ok := m.tickets[id]
		if !ok || t.IsDeleted() {
			continue
		}
		switch filter.Trash {
		case helpdesk.TrashExclude:
			if t.IsTrashed() {
				continue
			}
		case helpdesk.TrashOnly:
			if !t.IsTrashed() {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

type memAssignmentRepository struct {
	rows     map[uint][]uint
	replaced int
}

func newMemAssignmentRepository() *memAssignmentRepository {
	return &memAssignmentRepository{rows: map[uint][]uint{}}
}

func (m *memAssignmentRepository) ListForTicket(_ context.Context, ticketID uint) ([]uint, error) {
	return append([]uint(nil), m.rows[ticketID]...), nil
}

func (m *memAssignmentRepository) ReplaceForTicket(_ context.Context, ticketID uint, userIDs []uint, _ uint) error {
	m.replaced++
	m.rows[ticketID] = append([]uint(nil), userIDs...)
	return nil
}

func (m *memAssignmentRepository) GetAssignmentsForTickets(_ context.Context, ticketIDs []uint) (map[uint][]uint, error) {
	out := make(map[uint][]uint, len(ticketIDs))
	for _, id := range ticketIDs {
		if rows := m.rows[id]; len(rows) > 0 {
			out[id] = append([]uint(nil), rows...)
		}
	}
	return out, nil
}

type mockDirectory struct {
	users map[uint]*directory.User
}

func (m *mockDirectory) GetByID(_ context.Context, id uint) (*directory.User, error) {
	return m.users[id], nil
}

func (m *mockDirectory) FindByIDs(_ context.Context, ids []uint) ([]*directory.User, error) {
	var out []*directory.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type inlineTransactor struct{}

func (inlineTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockNotifier struct {
	assigned []string
}

func (n *mockNotifier) SendMeetingDecision(string, email.MeetingDecisionMail) error {
	return nil
}

func (n *mockNotifier) SendTicketAssigned(to string, _ email.TicketAssignedMail) error {
	n.assigned = append(n.assigned, to)
	return nil
}
