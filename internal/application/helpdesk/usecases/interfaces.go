package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/helpdesk/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type SetAssignmentsExecutor interface {
	Execute(ctx context.Context, cmd SetAssignmentsCommand) (*dto.TicketDTO, error)
}

type TicketLifecycleExecutor interface {
	Trash(ctx context.Context, cmd TicketActionCommand) (*dto.TicketDTO, error)
	Restore(ctx context.Context, cmd TicketActionCommand) (*dto.TicketDTO, error)
	Delete(ctx context.Context, cmd TicketActionCommand) error
}
