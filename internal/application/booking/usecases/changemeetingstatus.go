package usecases

import (
	"context"
	"time"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/infrastructure/email"
	"github.com/opsportal/opsportal/internal/shared/biztime"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type ChangeMeetingStatusCommand struct {
	MeetingID uint
	Status    string
	ActorID   uint
	Reason    string
}

type ChangeMeetingStatusUseCase struct {
	meetingRepo meeting.Repository
	statusRepo  meeting.StatusRepository
	roomRepo    room.Repository
	userRepo    directory.Repository
	notifier    email.Notifier
	logger      logger.Interface
}

func NewChangeMeetingStatusUseCase(
	meetingRepo meeting.Repository,
	statusRepo meeting.StatusRepository,
	roomRepo room.Repository,
	userRepo directory.Repository,
	notifier email.Notifier,
	logger logger.Interface,
) *ChangeMeetingStatusUseCase {
	return &ChangeMeetingStatusUseCase{
		meetingRepo: meetingRepo,
		statusRepo:  statusRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute appends a history row. Any transition is allowed, including to the current status.
func (uc *ChangeMeetingStatusUseCase) Execute(ctx context.Context, cmd ChangeMeetingStatusCommand) (*dto.StatusEntryDTO, error) {
	uc.logger.Infow("executing change meeting status use case",
		"meeting_id", cmd.MeetingID,
		"status", cmd.Status,
		"actor_id", cmd.ActorID)

	status, err := meeting.ParseStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	m, err := uc.meetingRepo.GetByID(ctx, cmd.MeetingID)
	if err != nil {
		uc.logger.Errorw("failed to get meeting", "meeting_id", cmd.MeetingID, "error", err)
		return nil, errors.NewInternalError("failed to get meeting")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("meeting not found")
	}

	entry, err := meeting.NewStatusEntry(m.ID(), status, cmd.ActorID, cmd.Reason, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.statusRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append meeting status", "meeting_id", m.ID(), "error", err)
		return nil, errors.NewInternalError("failed to change meeting status")
	}

	uc.logger.Infow("meeting status changed", "meeting_id", m.ID(), "status", status, "entry_id", entry.ID())

	if status != meeting.StatusPending {
		uc.notifyCreator(ctx, m, entry)
	}

	result := dto.ToStatusEntryDTO(entry)
	return &result, nil
}

// notifyCreator mails the decision to the meeting creator. Failures are logged only.
func (uc *ChangeMeetingStatusUseCase) notifyCreator(ctx context.Context, m *meeting.Meeting, entry *meeting.StatusEntry) {
	creator, err := uc.userRepo.GetByID(ctx, m.UserID())
	if err != nil || creator == nil || creator.Email == "" {
		uc.logger.Warnw("meeting creator has no reachable email", "meeting_id", m.ID(), "user_id", m.UserID(), "error", err)
		return
	}

	roomName := ""
	if r, err := uc.roomRepo.GetByID(ctx, m.RoomID()); err == nil && r != nil {
		roomName = r.Name()
	}

	mail := email.MeetingDecisionMail{
		MeetingID: m.ID(),
		Title:     m.Title(),
		RoomName:  roomName,
		Start:     biztime.Format(m.Interval().Start),
		End:       biztime.Format(m.Interval().End),
		Approved:  entry.Status() == meeting.StatusApproved,
	}
	if reason := entry.DeclineReason(); reason != nil {
		mail.Reason = *reason
	}

	if err := uc.notifier.SendMeetingDecision(creator.Email, mail); err != nil {
		uc.logger.Warnw("failed to send meeting decision email", "meeting_id", m.ID(), "to", creator.Email, "error", err)
	}
}
