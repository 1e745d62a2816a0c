package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/db"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type DeleteMeetingCommand struct {
	MeetingID uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type DeleteMeetingUseCase struct {
	meetingRepo  meeting.Repository
	statusRepo   meeting.StatusRepository
	attendeeRepo meeting.AttendeeRepository
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewDeleteMeetingUseCase(
	meetingRepo meeting.Repository,
	statusRepo meeting.StatusRepository,
	attendeeRepo meeting.AttendeeRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteMeetingUseCase {
	return &DeleteMeetingUseCase{
		meetingRepo:  meetingRepo,
		statusRepo:   statusRepo,
		attendeeRepo: attendeeRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

// Execute removes the meeting together with its attendee rows and status history.
func (uc *DeleteMeetingUseCase) Execute(ctx context.Context, cmd DeleteMeetingCommand) error {
	uc.logger.Infow("executing delete meeting use case", "meeting_id", cmd.MeetingID, "actor_id", cmd.ActorID)

	m, err := uc.meetingRepo.GetByID(ctx, cmd.MeetingID)
	if err != nil {
		uc.logger.Errorw("failed to get meeting", "meeting_id", cmd.MeetingID, "error", err)
		return errors.NewInternalError("failed to get meeting")
	}
	if m == nil {
		return errors.NewNotFoundError("meeting not found")
	}
	if !authorization.CanModifyOwned(cmd.ActorID, cmd.ActorRole, m.UserID()) {
		return errors.NewForbiddenError("only the creator or an admin can delete this meeting")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.attendeeRepo.DeleteByMeeting(txCtx, m.ID()); err != nil {
			return err
		}
		if err := uc.statusRepo.DeleteByMeeting(txCtx, m.ID()); err != nil {
			return err
		}
		return uc.meetingRepo.Delete(txCtx, m.ID())
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete meeting", "meeting_id", cmd.MeetingID, "error", err)
		return errors.NewInternalError("failed to delete meeting")
	}

	uc.logger.Infow("meeting deleted successfully", "meeting_id", cmd.MeetingID)
	return nil
}
