package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	vo "github.com/opsportal/opsportal/internal/domain/helpdesk/valueobjects"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/db"
)

func createTicket(t *testing.T, repo helpdesk.TicketRepository, title string) *helpdesk.Ticket {
	t.Helper()
	tk, err := helpdesk.NewTicket(title, "<p>details</p>", 11, vo.PriorityMedium, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tk))
	return tk
}

// assign mirrors the set-assignments use case: join table and cached column in one transaction.
func assign(t *testing.T, txm *db.TransactionManager, tickets helpdesk.TicketRepository, assignments helpdesk.AssignmentRepository, tk *helpdesk.Ticket, ids []uint) {
	t.Helper()
	require.NoError(t, txm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := assignments.ReplaceForTicket(ctx, tk.ID(), ids, 2); err != nil {
			return err
		}
		tk.MirrorAssignment(ids, 2, time.Now())
		return tickets.Update(ctx, tk)
	}))
}

func TestTicketAssignments_UnassignThenAssignOrdered(t *testing.T) {
	gdb := setupTestDB(t)
	tickets := NewHelpdeskTicketRepository(gdb)
	assignments := NewTicketAssignmentRepository(gdb)
	txm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	tk := createTicket(t, tickets, "Printer jam")
	assign(t, txm, tickets, assignments, tk, []uint{4})

	assign(t, txm, tickets, assignments, tk, []uint{})
	var rows int64
	require.NoError(t, gdb.Model(&models.TicketAssignmentModel{}).Where("ticket_id = ?", tk.ID()).Count(&rows).Error)
	assert.Zero(t, rows)
	stored, err := tickets.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, stored.AssignedTo())

	assign(t, txm, tickets, assignments, tk, []uint{9, 3})
	stored, err = tickets.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, stored.AssignedTo())
	assert.Equal(t, uint(9), *stored.AssignedTo())

	got, err := assignments.GetAssignmentsForTickets(ctx, []uint{tk.ID()})
	require.NoError(t, err)
	assert.Equal(t, []uint{9, 3}, got[tk.ID()])

	ordered, err := assignments.ListForTicket(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, []uint{9, 3}, ordered)
}

func TestTicketAssignments_SharedStampAndBatchRead(t *testing.T) {
	gdb := setupTestDB(t)
	tickets := NewHelpdeskTicketRepository(gdb)
	assignments := NewTicketAssignmentRepository(gdb)
	ctx := context.Background()

	a := createTicket(t, tickets, "VPN down")
	b := createTicket(t, tickets, "New laptop")
	require.NoError(t, assignments.ReplaceForTicket(ctx, a.ID(), []uint{5, 6}, 1))
	require.NoError(t, assignments.ReplaceForTicket(ctx, b.ID(), []uint{6}, 1))

	var rows []models.TicketAssignmentModel
	require.NoError(t, gdb.Where("ticket_id = ?", a.ID()).Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0].CreatedAt, rows[1].CreatedAt)
	assert.Equal(t, uint(1), rows[0].AssignedBy)

	got, err := assignments.GetAssignmentsForTickets(ctx, []uint{a.ID(), b.ID(), 999})
	require.NoError(t, err)
	assert.Equal(t, []uint{5, 6}, got[a.ID()])
	assert.Equal(t, []uint{6}, got[b.ID()])
	assert.Empty(t, got[999])

	empty, err := assignments.GetAssignmentsForTickets(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHelpdeskTicketRepository_TrashAndDeleteFilters(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewHelpdeskTicketRepository(gdb)
	ctx := context.Background()

	createTicket(t, repo, "Live")
	trashed := createTicket(t, repo, "Trashed")
	deleted := createTicket(t, repo, "Deleted")
	trashedThenDeleted := createTicket(t, repo, "Trashed then deleted")

	require.NoError(t, trashed.Trash(time.Now()))
	require.NoError(t, repo.Update(ctx, trashed))
	deleted.MarkDeleted(time.Now())
	require.NoError(t, repo.Update(ctx, deleted))
	require.NoError(t, trashedThenDeleted.Trash(time.Now()))
	trashedThenDeleted.MarkDeleted(time.Now())
	require.NoError(t, repo.Update(ctx, trashedThenDeleted))

	titles := func(filter helpdesk.TicketFilter) []string {
		list, err := repo.List(ctx, filter)
		require.NoError(t, err)
		out := make([]string, 0, len(list))
		for _, tk := range list {
			out = append(out, tk.Title())
		}
		return out
	}

	assert.ElementsMatch(t, []string{"Live"}, titles(helpdesk.TicketFilter{}))
	assert.ElementsMatch(t, []string{"Trashed"}, titles(helpdesk.TicketFilter{Trash: helpdesk.TrashOnly}))
	assert.ElementsMatch(t, []string{"Live", "Trashed"}, titles(helpdesk.TicketFilter{Trash: helpdesk.TrashInclude}))

	got, err := repo.GetByID(ctx, trashed.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsTrashed())

	got, err = repo.GetByID(ctx, deleted.ID())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHelpdeskTicketRepository_ResolveTimePersisted(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewHelpdeskTicketRepository(gdb)
	ctx := context.Background()

	tk := createTicket(t, repo, "Badge reader")
	resolvedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, resolvedAt))
	require.NoError(t, repo.Update(ctx, tk))
	require.NoError(t, tk.ChangeStatus(vo.StatusOpen, resolvedAt.Add(time.Hour)))
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, resolvedAt.Add(2*time.Hour)))
	require.NoError(t, repo.Update(ctx, tk))

	stored, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, stored.ResolveTime())
	assert.True(t, stored.ResolveTime().Equal(resolvedAt))

	status := vo.StatusResolved
	list, err := repo.List(ctx, helpdesk.TicketFilter{Status: &status})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
