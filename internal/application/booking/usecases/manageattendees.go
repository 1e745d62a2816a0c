package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/utils/setutil"
)

type AttendeeCommand struct {
	MeetingID uint
	UserID    uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type ReplaceAttendeesCommand struct {
	MeetingID uint
	UserIDs   []uint
	ActorID   uint
	ActorRole authorization.UserRole
}

// ManageAttendeesUseCase edits a meeting's attendee set. Every operation returns the
// resulting set in attendee id order.
type ManageAttendeesUseCase struct {
	meetingRepo  meeting.Repository
	attendeeRepo meeting.AttendeeRepository
	userRepo     directory.Repository
	logger       logger.Interface
}

func NewManageAttendeesUseCase(
	meetingRepo meeting.Repository,
	attendeeRepo meeting.AttendeeRepository,
	userRepo directory.Repository,
	logger logger.Interface,
) *ManageAttendeesUseCase {
	return &ManageAttendeesUseCase{
		meetingRepo:  meetingRepo,
		attendeeRepo: attendeeRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *ManageAttendeesUseCase) Add(ctx context.Context, cmd AttendeeCommand) ([]uint, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if err := uc.authorize(ctx, cmd.MeetingID, cmd.ActorID, cmd.ActorRole); err != nil {
		return nil, err
	}
	if err := requireUsers(ctx, uc.userRepo, []uint{cmd.UserID}); err != nil {
		return nil, err
	}

	if err := uc.attendeeRepo.Add(ctx, cmd.MeetingID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to add attendee", "meeting_id", cmd.MeetingID, "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to add attendee")
	}
	uc.logger.Infow("attendee added", "meeting_id", cmd.MeetingID, "user_id", cmd.UserID)
	return uc.list(ctx, cmd.MeetingID)
}

func (uc *ManageAttendeesUseCase) Remove(ctx context.Context, cmd AttendeeCommand) ([]uint, error) {
	if err := uc.authorize(ctx, cmd.MeetingID, cmd.ActorID, cmd.ActorRole); err != nil {
		return nil, err
	}

	if err := uc.attendeeRepo.Remove(ctx, cmd.MeetingID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to remove attendee", "meeting_id", cmd.MeetingID, "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to remove attendee")
	}
	uc.logger.Infow("attendee removed", "meeting_id", cmd.MeetingID, "user_id", cmd.UserID)
	return uc.list(ctx, cmd.MeetingID)
}

func (uc *ManageAttendeesUseCase) Replace(ctx context.Context, cmd ReplaceAttendeesCommand) ([]uint, error) {
	if err := uc.authorize(ctx, cmd.MeetingID, cmd.ActorID, cmd.ActorRole); err != nil {
		return nil, err
	}
	ids := setutil.Positive(cmd.UserIDs)
	if err := requireUsers(ctx, uc.userRepo, ids); err != nil {
		return nil, err
	}

	if err := uc.attendeeRepo.Replace(ctx, cmd.MeetingID, ids); err != nil {
		uc.logger.Errorw("failed to replace attendees", "meeting_id", cmd.MeetingID, "error", err)
		return nil, errors.NewInternalError("failed to replace attendees")
	}
	uc.logger.Infow("attendees replaced", "meeting_id", cmd.MeetingID, "count", len(ids))
	return uc.list(ctx, cmd.MeetingID)
}

func (uc *ManageAttendeesUseCase) authorize(ctx context.Context, meetingID, actorID uint, role authorization.UserRole) error {
	m, err := uc.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		uc.logger.Errorw("failed to get meeting", "meeting_id", meetingID, "error", err)
		return errors.NewInternalError("failed to get meeting")
	}
	if m == nil {
		return errors.NewNotFoundError("meeting not found")
	}
	if !authorization.CanModifyOwned(actorID, role, m.UserID()) {
		return errors.NewForbiddenError("only the creator or an admin can change attendees")
	}
	return nil
}

func (uc *ManageAttendeesUseCase) list(ctx context.Context, meetingID uint) ([]uint, error) {
	ids, err := uc.attendeeRepo.List(ctx, meetingID)
	if err != nil {
		uc.logger.Errorw("failed to list attendees", "meeting_id", meetingID, "error", err)
		return nil, errors.NewInternalError("failed to list attendees")
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}
