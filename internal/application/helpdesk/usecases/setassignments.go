package usecases

import (
	"context"
	"time"

	"github.com/opsportal/opsportal/internal/application/helpdesk/dto"
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	"github.com/opsportal/opsportal/internal/infrastructure/email"
	"github.com/opsportal/opsportal/internal/shared/db"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/services/markdown"
)

// SetAssignmentsCommand replaces the whole assignee set. An empty AssigneeIDs
// unassigns the ticket.
type SetAssignmentsCommand struct {
	TicketID    uint
	AssigneeIDs []uint
	ActorID     uint
}

type SetAssignmentsUseCase struct {
	ticketRepo     helpdesk.TicketRepository
	assignmentRepo helpdesk.AssignmentRepository
	assigner       assigner
	renderer       renderer
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewSetAssignmentsUseCase(
	ticketRepo helpdesk.TicketRepository,
	assignmentRepo helpdesk.AssignmentRepository,
	userRepo directory.Repository,
	notifier email.Notifier,
	markdownService markdown.MarkdownService,
	txMgr db.Transactor,
	logger logger.Interface,
) *SetAssignmentsUseCase {
	return &SetAssignmentsUseCase{
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		assigner:       assigner{assignmentRepo, userRepo, notifier, logger},
		renderer:       renderer{assignmentRepo, markdownService, logger},
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *SetAssignmentsUseCase) Execute(ctx context.Context, cmd SetAssignmentsCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing set ticket assignments use case",
		"ticket_id", cmd.TicketID,
		"assignee_ids", cmd.AssigneeIDs,
		"actor_id", cmd.ActorID)

	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}
	ids, err := uc.assigner.validate(ctx, cmd.AssigneeIDs)
	if err != nil {
		return nil, err
	}

	var previous []uint
	changed := false
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if previous, err = uc.assignmentRepo.ListForTicket(txCtx, t.ID()); err != nil {
			return err
		}
		if changed, err = uc.assigner.replace(txCtx, t, previous, ids, cmd.ActorID, time.Now()); err != nil || !changed {
			return err
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to set ticket assignments", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to set ticket assignments")
	}

	if changed {
		uc.logger.Infow("ticket assignments replaced", "ticket_id", t.ID(), "assignee_ids", ids)
		uc.assigner.notifyNew(ctx, t, previous, ids)
	} else {
		uc.logger.Infow("ticket assignments unchanged", "ticket_id", t.ID())
	}
	return uc.renderer.one(ctx, t)
}
