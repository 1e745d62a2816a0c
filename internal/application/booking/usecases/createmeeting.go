package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/infrastructure/cache"
	"github.com/opsportal/opsportal/internal/shared/db"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/utils/setutil"
)

type CreateMeetingCommand struct {
	Title     string
	RoomID    uint
	UserID    uint
	StartTime string
	EndTime   string
	WingID    *uint
	SubwID    *uint
	Attendees []uint
}

type CreateMeetingUseCase struct {
	meetingRepo  meeting.Repository
	statusRepo   meeting.StatusRepository
	attendeeRepo meeting.AttendeeRepository
	roomRepo     room.Repository
	userRepo     directory.Repository
	txMgr        db.Transactor
	locker       cache.RoomLocker
	logger       logger.Interface
}

func NewCreateMeetingUseCase(
	meetingRepo meeting.Repository,
	statusRepo meeting.StatusRepository,
	attendeeRepo meeting.AttendeeRepository,
	roomRepo room.Repository,
	userRepo directory.Repository,
	txMgr db.Transactor,
	locker cache.RoomLocker,
	logger logger.Interface,
) *CreateMeetingUseCase {
	return &CreateMeetingUseCase{
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

func (uc *CreateMeetingUseCase) Execute(ctx context.Context, cmd CreateMeetingCommand) (*dto.MeetingDTO, error) {
	uc.logger.Infow("executing create meeting use case", "room_id", cmd.RoomID, "user_id", cmd.UserID)

	interval, err := parseInterval(cmd.StartTime, cmd.EndTime)
	if err != nil {
		return nil, err
	}

	m, err := meeting.NewMeeting(cmd.Title, cmd.RoomID, cmd.UserID, interval, cmd.WingID, cmd.SubwID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	r, err := uc.roomRepo.GetByID(ctx, cmd.RoomID)
	if err != nil {
		uc.logger.Errorw("failed to get room", "room_id", cmd.RoomID, "error", err)
		return nil, errors.NewInternalError("failed to get room")
	}
	if r == nil {
		return nil, errors.NewNotFoundError("room not found")
	}

	attendees := setutil.Positive(cmd.Attendees)
	if err := requireUsers(ctx, uc.userRepo, attendees); err != nil {
		return nil, err
	}

	unlock, err := uc.locker.Lock(ctx, cmd.RoomID)
	if err != nil {
		if stderrors.Is(err, cache.ErrRoomLockTimeout) {
			return nil, errors.NewConflictError(err.Error())
		}
		uc.logger.Errorw("failed to lock room", "room_id", cmd.RoomID, "error", err)
		return nil, errors.NewInternalError("failed to reserve room")
	}
	defer unlock()

	var pending *meeting.StatusEntry
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		blocking, current, err := slotChecker{uc.meetingRepo, uc.statusRepo}.blocking(txCtx, m)
		if err != nil {
			return err
		}
		if len(blocking) > 0 {
			return conflictError(blocking, current)
		}

		if err := uc.meetingRepo.Create(txCtx, m); err != nil {
			return err
		}

		pending, err = meeting.NewStatusEntry(m.ID(), meeting.StatusPending, 0, "", time.Now())
		if err != nil {
			return err
		}
		if err := uc.statusRepo.Append(txCtx, pending); err != nil {
			return err
		}

		if len(attendees) > 0 {
			return uc.attendeeRepo.Replace(txCtx, m.ID(), attendees)
		}
		return nil
	})
	if err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("meeting slot conflict", "room_id", cmd.RoomID,
				"start", interval.Start, "end", interval.End)
			return nil, err
		}
		uc.logger.Errorw("failed to create meeting", "room_id", cmd.RoomID, "error", err)
		return nil, errors.NewInternalError("failed to create meeting")
	}

	uc.logger.Infow("meeting created successfully", "meeting_id", m.ID(), "room_id", cmd.RoomID)
	return dto.ToMeetingDTO(m, pending, attendees), nil
}
