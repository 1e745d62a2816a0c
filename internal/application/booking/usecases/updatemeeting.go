package usecases

import (
	"context"
	stderrors "errors"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/infrastructure/cache"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/db"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/utils"
	"github.com/opsportal/opsportal/internal/shared/utils/setutil"
)

// UpdateMeetingCommand carries optional fields; nil leaves the stored value alone.
type UpdateMeetingCommand struct {
	MeetingID uint
	ActorID   uint
	ActorRole authorization.UserRole
	Title     *string
	RoomID    *uint
	StartTime *string
	EndTime   *string
	WingID    *uint
	SubwID    *uint
	Attendees utils.IDList
}

type UpdateMeetingUseCase struct {
	meetingRepo  meeting.Repository
	statusRepo   meeting.StatusRepository
	attendeeRepo meeting.AttendeeRepository
	roomRepo     room.Repository
	userRepo     directory.Repository
	txMgr        db.Transactor
	locker       cache.RoomLocker
	logger       logger.Interface
}

func NewUpdateMeetingUseCase(
	meetingRepo meeting.Repository,
	statusRepo meeting.StatusRepository,
	attendeeRepo meeting.AttendeeRepository,
	roomRepo room.Repository,
	userRepo directory.Repository,
	txMgr db.Transactor,
	locker cache.RoomLocker,
	logger logger.Interface,
) *UpdateMeetingUseCase {
	return &UpdateMeetingUseCase{
		meetingRepo:  meetingRepo,
		statusRepo:   statusRepo,
		attendeeRepo: attendeeRepo,
		roomRepo:     roomRepo,
		userRepo:     userRepo,
		txMgr:        txMgr,
		locker:       locker,
		logger:       logger,
	}
}

func (uc *UpdateMeetingUseCase) Execute(ctx context.Context, cmd UpdateMeetingCommand) (*dto.MeetingDTO, error) {
	uc.logger.Infow("executing update meeting use case", "meeting_id", cmd.MeetingID, "actor_id", cmd.ActorID)

	if cmd.MeetingID == 0 {
		return nil, errors.NewValidationError("meeting ID is required")
	}

	m, err := uc.meetingRepo.GetByID(ctx, cmd.MeetingID)
	if err != nil {
		uc.logger.Errorw("failed to get meeting", "meeting_id", cmd.MeetingID, "error", err)
		return nil, errors.NewInternalError("failed to get meeting")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("meeting not found")
	}
	if !authorization.CanModifyOwned(cmd.ActorID, cmd.ActorRole, m.UserID()) {
		return nil, errors.NewForbiddenError("only the creator or an admin can modify this meeting")
	}

	if cmd.Title != nil {
		if err := m.Rename(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.WingID != nil || cmd.SubwID != nil {
		wing, subw := m.WingID(), m.SubwID()
		if cmd.WingID != nil {
			wing = cmd.WingID
		}
		if cmd.SubwID != nil {
			subw = cmd.SubwID
		}
		m.SetOrgUnit(wing, subw)
	}

	rescheduled, err := uc.applySchedule(ctx, m, cmd)
	if err != nil {
		return nil, err
	}

	var attendees []uint
	if cmd.Attendees.Present {
		attendees = setutil.Positive(cmd.Attendees.IDs)
		if err := requireUsers(ctx, uc.userRepo, attendees); err != nil {
			return nil, err
		}
	}

	if rescheduled {
		unlock, err := uc.locker.Lock(ctx, m.RoomID())
		if err != nil {
			if stderrors.Is(err, cache.ErrRoomLockTimeout) {
				return nil, errors.NewConflictError(err.Error())
			}
			uc.logger.Errorw("failed to lock room", "room_id", m.RoomID(), "error", err)
			return nil, errors.NewInternalError("failed to reserve room")
		}
		defer unlock()
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if rescheduled {
			blocking, current, err := slotChecker{uc.meetingRepo, uc.statusRepo}.blocking(txCtx, m)
			if err != nil {
				return err
			}
			if len(blocking) > 0 {
				return conflictError(blocking, current)
			}
		}
		if err := uc.meetingRepo.Update(txCtx, m); err != nil {
			return err
		}
		if cmd.Attendees.Present {
			return uc.attendeeRepo.Replace(txCtx, m.ID(), attendees)
		}
		return nil
	})
	if err != nil {
		if errors.IsConflictError(err) || errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update meeting", "meeting_id", cmd.MeetingID, "error", err)
		return nil, errors.NewInternalError("failed to update meeting")
	}

	current, err := uc.statusRepo.CurrentForMeetings(ctx, []uint{m.ID()})
	if err != nil {
		uc.logger.Errorw("failed to load meeting status", "meeting_id", m.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load meeting status")
	}
	if !cmd.Attendees.Present {
		if attendees, err = uc.attendeeRepo.List(ctx, m.ID()); err != nil {
			uc.logger.Errorw("failed to list attendees", "meeting_id", m.ID(), "error", err)
			return nil, errors.NewInternalError("failed to list attendees")
		}
	}

	uc.logger.Infow("meeting updated successfully", "meeting_id", m.ID(), "rescheduled", rescheduled)
	return dto.ToMeetingDTO(m, current[m.ID()], attendees), nil
}

// applySchedule moves m when the room or either bound changed and reports whether it did.
func (uc *UpdateMeetingUseCase) applySchedule(ctx context.Context, m *meeting.Meeting, cmd UpdateMeetingCommand) (bool, error) {
	if cmd.RoomID == nil && cmd.StartTime == nil && cmd.EndTime == nil {
		return false, nil
	}

	roomID := m.RoomID()
	if cmd.RoomID != nil {
		roomID = *cmd.RoomID
		r, err := uc.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			uc.logger.Errorw("failed to get room", "room_id", roomID, "error", err)
			return false, errors.NewInternalError("failed to get room")
		}
		if r == nil {
			return false, errors.NewNotFoundError("room not found")
		}
	}

	interval := m.Interval()
	start, end := interval.Start, interval.End
	if cmd.StartTime != nil {
		t, err := parseRFC3339(*cmd.StartTime, "start_time")
		if err != nil {
			return false, err
		}
		start = t
	}
	if cmd.EndTime != nil {
		t, err := parseRFC3339(*cmd.EndTime, "end_time")
		if err != nil {
			return false, err
		}
		end = t
	}
	next, err := meeting.NewInterval(start, end)
	if err != nil {
		return false, errors.NewValidationError(err.Error())
	}

	if roomID == m.RoomID() && next.Equal(interval) {
		return false, nil
	}
	if err := m.Reschedule(roomID, next); err != nil {
		return false, errors.NewValidationError(err.Error())
	}
	return true, nil
}
