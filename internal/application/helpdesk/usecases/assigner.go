package usecases

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/opsportal/opsportal/internal/application/helpdesk/dto"
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	"github.com/opsportal/opsportal/internal/infrastructure/email"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/services/markdown"
	"github.com/opsportal/opsportal/internal/shared/utils/setutil"
)

// assigner owns the assignee set of a ticket: the join table plus the cached
// assigned_to column. replace must run inside a transaction.
type assigner struct {
	assignmentRepo helpdesk.AssignmentRepository
	userRepo       directory.Repository
	notifier       email.Notifier
	logger         logger.Interface
}

// validate sanitizes raw and checks every id against the user directory.
func (a assigner) validate(ctx context.Context, raw []uint) ([]uint, error) {
	ids := setutil.Positive(raw)
	missing, err := directory.MissingIDs(ctx, a.userRepo, ids)
	if err != nil {
		a.logger.Errorw("failed to look up assignees", "error", err)
		return nil, errors.NewInternalError("failed to look up users")
	}
	if len(missing) > 0 {
		parts := make([]string, 0, len(missing))
		for _, id := range missing {
			parts = append(parts, strconv.FormatUint(uint64(id), 10))
		}
		return nil, errors.NewValidationError("unknown assignee ids", strings.Join(parts, ","))
	}
	return ids, nil
}

// replace rewrites the join table and mirrors the primary assignee onto t.
// It reports false when the set is unchanged and nothing was written.
func (a assigner) replace(ctx context.Context, t *helpdesk.Ticket, previous, ids []uint, actorID uint, now time.Time) (bool, error) {
	if helpdesk.SameAssignees(previous, ids) {
		return false, nil
	}
	if err := a.assignmentRepo.ReplaceForTicket(ctx, t.ID(), ids, actorID); err != nil {
		return false, err
	}
	t.MirrorAssignment(ids, actorID, now)
	return true, nil
}

// notifyNew mails users present in ids but not in previous. Failures are logged only.
func (a assigner) notifyNew(ctx context.Context, t *helpdesk.Ticket, previous, ids []uint) {
	added := setutil.FromSlice(previous).Missing(ids)
	if len(added) == 0 {
		return
	}
	users, err := a.userRepo.FindByIDs(ctx, added)
	if err != nil {
		a.logger.Warnw("failed to load new assignees for notification", "ticket_id", t.ID(), "error", err)
		return
	}
	mail := email.TicketAssignedMail{TicketID: t.ID(), Title: t.Title(), Priority: t.Priority().String()}
	for _, u := range users {
		if u.Email == "" {
			continue
		}
		if err := a.notifier.SendTicketAssigned(u.Email, mail); err != nil {
			a.logger.Warnw("failed to send ticket assignment email", "ticket_id", t.ID(), "to", u.Email, "error", err)
		}
	}
}

// renderer hydrates tickets for responses.
type renderer struct {
	assignmentRepo helpdesk.AssignmentRepository
	markdown       markdown.MarkdownService
	logger         logger.Interface
}

func (r renderer) one(ctx context.Context, t *helpdesk.Ticket) (*dto.TicketDTO, error) {
	list, err := r.many(ctx, []*helpdesk.Ticket{t})
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

func (r renderer) many(ctx context.Context, tickets []*helpdesk.Ticket) ([]*dto.TicketDTO, error) {
	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID())
	}
	assignments, err := r.assignmentRepo.GetAssignmentsForTickets(ctx, ids)
	if err != nil {
		r.logger.Errorw("failed to load ticket assignments", "error", err)
		return nil, errors.NewInternalError("failed to load ticket assignments")
	}

	out := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		html, err := r.markdown.ToHTMLSanitized(t.Details())
		if err != nil {
			r.logger.Warnw("failed to render ticket details", "ticket_id", t.ID(), "error", err)
			html = r.markdown.Sanitize(t.Details())
		}
		out = append(out, dto.ToTicketDTO(t, assignments[t.ID()], html))
	}
	return out, nil
}
