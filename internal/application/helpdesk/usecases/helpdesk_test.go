package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/services/markdown"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

type helpdeskFixture struct {
	tickets     *memTicketRepository
	assignments *memAssignmentRepository
	notifier    *mockNotifier
	create      *CreateTicketUseCase
	update      *UpdateTicketUseCase
	assign      *SetAssignmentsUseCase
	list        *ListTicketsUseCase
	lifecycle   *TicketLifecycleUseCase
}

func newHelpdeskFixture() *helpdeskFixture {
	f := &helpdeskFixture{
		tickets:     newMemTicketRepository(),
		assignments: newMemAssignmentRepository(),
		notifier:    &mockNotifier{},
	}
	users := &mockDirectory{users: map[uint]*directory.User{
		3: {ID: 3, Email: "three@example.com"},
		9: {ID: 9, Email: "nine@example.com"},
		4: {ID: 4},
	}}
	md := markdown.NewMarkdownService()
	log := logger.NewNopLogger()
	tx := inlineTransactor{}

	f.create = NewCreateTicketUseCase(f.tickets, f.assignments, users, f.notifier, md, tx, log)
	f.update = NewUpdateTicketUseCase(f.tickets, f.assignments, users, f.notifier, md, tx, log)
	f.assign = NewSetAssignmentsUseCase(f.tickets, f.assignments, users, f.notifier, md, tx, log)
	f.list = NewListTicketsUseCase(f.tickets, f.assignments, md, log)
	f.lifecycle = NewTicketLifecycleUseCase(f.tickets, f.assignments, md, log)
	return f
}

func (f *helpdeskFixture) newTicket(t *testing.T) uint {
	t.Helper()
	got, err := f.create.Execute(context.Background(), CreateTicketCommand{Title: "Printer jam", Details: "Floor 2", ReporterID: 7})
	require.NoError(t, err)
	return got.ID
}

func TestCreateTicket_SanitizesDetails(t *testing.T) {
	f := newHelpdeskFixture()

	got, err := f.create.Execute(context.Background(), CreateTicketCommand{
		Title:      "VPN",
		Details:    "**cannot** connect<script>alert(1)</script>",
		ReporterID: 7,
	})
	require.NoError(t, err)

	assert.NotContains(t, got.Details, "<script>")
	assert.Contains(t, got.DetailsHTML, "<strong>cannot</strong>")
	assert.Equal(t, "open", got.Status)
	assert.Equal(t, "medium", got.Priority)
	assert.Nil(t, got.AssignedTo)
	assert.Equal(t, []uint{}, got.Assignees)
}

func TestCreateTicket_WithAssignees(t *testing.T) {
	f := newHelpdeskFixture()

	got, err := f.create.Execute(context.Background(), CreateTicketCommand{
		Title: "Badge", ReporterID: 7, Priority: "high", Assignees: utils.SomeIDs(9, 3),
	})
	require.NoError(t, err)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, uint(9), *got.AssignedTo)
	assert.Equal(t, []uint{9, 3}, got.Assignees)
	assert.ElementsMatch(t, []string{"nine@example.com", "three@example.com"}, f.notifier.assigned)
}

func TestSetAssignments(t *testing.T) {
	f := newHelpdeskFixture()
	ctx := context.Background()
	id := f.newTicket(t)

	got, err := f.assign.Execute(ctx, SetAssignmentsCommand{TicketID: id, AssigneeIDs: []uint{9, 3, 9, 0}, ActorID: 1})
	require.NoError(t, err)
	assert.Equal(t, []uint{9, 3}, got.Assignees)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, uint(9), *got.AssignedTo)
	require.NotNil(t, got.AssignedBy)
	assert.Equal(t, uint(1), *got.AssignedBy)
	assert.Equal(t, 1, f.assignments.replaced)

	// same set is a no-op on the join table
	_, err = f.assign.Execute(ctx, SetAssignmentsCommand{TicketID: id, AssigneeIDs: []uint{9, 3}, ActorID: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, f.assignments.replaced)

	// reordering changes the primary assignee
	got, err = f.assign.Execute(ctx, SetAssignmentsCommand{TicketID: id, AssigneeIDs: []uint{3, 9}, ActorID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(3), *got.AssignedTo)
	assert.Len(t, f.notifier.assigned, 2, "reordering notifies nobody new")

	got, err = f.assign.Execute(ctx, SetAssignmentsCommand{TicketID: id, AssigneeIDs: nil, ActorID: 1})
	require.NoError(t, err)
	assert.Nil(t, got.AssignedTo)
	assert.Empty(t, got.Assignees)
}

func TestSetAssignments_Errors(t *testing.T) {
	f := newHelpdeskFixture()
	ctx := context.Background()
	id := f.newTicket(t)

	_, err := f.assign.Execute(ctx, SetAssignmentsCommand{TicketID: id, AssigneeIDs: []uint{9, 404}, ActorID: 1})
	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, f.assignments.replaced)

	_, err = f.assign.Execute(ctx, SetAssignmentsCommand{TicketID: 999, AssigneeIDs: []uint{9}, ActorID: 1})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTicket_ResolveTimeSetOnce(t *testing.T) {
	f := newHelpdeskFixture()
	ctx := context.Background()
	id := f.newTicket(t)
	resolved, open := "resolved", "open"

	got, err := f.update.Execute(ctx, UpdateTicketCommand{TicketID: id, ActorID: 5, ActorRole: authorization.RoleHelpdesk, Status: &resolved})
	require.NoError(t, err)
	require.NotNil(t, got.ResolveTime)
	first := *got.ResolveTime

	_, err = f.update.Execute(ctx, UpdateTicketCommand{TicketID: id, ActorID: 5, ActorRole: authorization.RoleHelpdesk, Status: &open})
	require.NoError(t, err)
	got, err = f.update.Execute(ctx, UpdateTicketCommand{TicketID: id, ActorID: 5, ActorRole: authorization.RoleHelpdesk, Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, first, *got.ResolveTime)
}

func TestUpdateTicket_AssigneesOptional(t *testing.T) {
	f := newHelpdeskFixture()
	ctx := context.Background()
	id := f.newTicket(t)

	_, err := f.update.Execute(ctx, UpdateTicketCommand{TicketID: id, ActorID: 7, ActorRole: authorization.RoleStaff, Assignees: utils.SomeIDs(4)})
	require.NoError(t, err)

	title := "Printer jam, tray 2"
	got, err := f.update.Execute(ctx, UpdateTicketCommand{TicketID: id, ActorID: 7, ActorRole: authorization.RoleStaff, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, []uint{4}, got.Assignees)
	assert.Equal(t, title, got.Title)

	got, err = f.update.Execute(ctx, UpdateTicketCommand{TicketID: id, ActorID: 7, ActorRole: authorization.RoleStaff, Assignees: utils.IDList{Present: true}})
	require.NoError(t, err)
	assert.Empty(t, got.Assignees)
	assert.Nil(t, got.AssignedTo)
}

func TestUpdateTicket_Forbidden(t *testing.T) {
	f := newHelpdeskFixture()
	id := f.newTicket(t)
	title := "hijack"

	_, err := f.update.Execute(context.Background(), UpdateTicketCommand{TicketID: id, ActorID: 8, ActorRole: authorization.RoleStaff, Title: &title})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestTicketLifecycle_TrashAndDelete(t *testing.T) {
	f := newHelpdeskFixture()
	ctx := context.Background()
	live := f.newTicket(t)
	trashed := f.newTicket(t)
	owner := func(id uint) TicketActionCommand {
		return TicketActionCommand{TicketID: id, ActorID: 7, ActorRole: authorization.RoleStaff}
	}

	got, err := f.lifecycle.Trash(ctx, owner(trashed))
	require.NoError(t, err)
	assert.True(t, got.Trashed)

	list, err := f.list.Execute(ctx, ListTicketsQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, live, list[0].ID)

	list, err = f.list.Execute(ctx, ListTicketsQuery{Trashed: "only"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, trashed, list[0].ID)

	require.NoError(t, f.lifecycle.Delete(ctx, owner(trashed)))
	list, err = f.list.Execute(ctx, ListTicketsQuery{Trashed: "only"})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.True(t, f.tickets.tickets[trashed].IsTrashed(), "delete keeps the trash marker")

	_, err = f.lifecycle.Restore(ctx, owner(trashed))
	assert.True(t, errors.IsNotFoundError(err))

	_, err = f.list.Execute(ctx, ListTicketsQuery{Trashed: "everything"})
	assert.True(t, errors.IsValidationError(err))
}
