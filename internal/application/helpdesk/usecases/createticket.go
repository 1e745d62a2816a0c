package usecases

import (
	"context"
	"time"

	"github.com/opsportal/opsportal/internal/application/helpdesk/dto"
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	vo "github.com/opsportal/opsportal/internal/domain/helpdesk/valueobjects"
	"github.com/opsportal/opsportal/internal/infrastructure/email"
	"github.com/opsportal/opsportal/internal/shared/db"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/services/markdown"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

type CreateTicketCommand struct {
	Title      string
	Details    string
	Priority   string
	ReporterID uint
	// Assignees is optional; when present the ticket is created already assigned.
	Assignees utils.IDList
}

type CreateTicketUseCase struct {
	ticketRepo helpdesk.TicketRepository
	assigner   assigner
	renderer   renderer
	markdown   markdown.MarkdownService
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo helpdesk.TicketRepository,
	assignmentRepo helpdesk.AssignmentRepository,
	userRepo directory.Repository,
	notifier email.Notifier,
	markdownService markdown.MarkdownService,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		assigner:   assigner{assignmentRepo, userRepo, notifier, logger},
		renderer:   renderer{assignmentRepo, markdownService, logger},
		markdown:   markdownService,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "reporter_id", cmd.ReporterID, "priority", cmd.Priority)

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	now := time.Now()
	t, err := helpdesk.NewTicket(cmd.Title, uc.markdown.Sanitize(cmd.Details), cmd.ReporterID, priority, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var assignees []uint
	if cmd.Assignees.Present {
		if assignees, err = uc.assigner.validate(ctx, cmd.Assignees.IDs); err != nil {
			return nil, err
		}
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Create(txCtx, t); err != nil {
			return err
		}
		changed, err := uc.assigner.replace(txCtx, t, nil, assignees, cmd.ReporterID, now)
		if err != nil || !changed {
			return err
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "reporter_id", cmd.ReporterID, "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "assignees", len(assignees))
	uc.assigner.notifyNew(ctx, t, nil, assignees)
	return uc.renderer.one(ctx, t)
}
