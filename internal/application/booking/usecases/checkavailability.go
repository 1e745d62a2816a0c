package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type CheckAvailabilityQuery struct {
	RoomID    uint
	StartTime string
	EndTime   string
	// ExcludeMeetingID lets an editor check a new slot for an existing booking.
	ExcludeMeetingID uint
}

type CheckAvailabilityUseCase struct {
	meetingRepo meeting.Repository
	statusRepo  meeting.StatusRepository
	roomRepo    room.Repository
	logger      logger.Interface
}

func NewCheckAvailabilityUseCase(
	meetingRepo meeting.Repository,
	statusRepo meeting.StatusRepository,
	roomRepo room.Repository,
	logger logger.Interface,
) *CheckAvailabilityUseCase {
	return &CheckAvailabilityUseCase{
		meetingRepo: meetingRepo,
		statusRepo:  statusRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

func (uc *CheckAvailabilityUseCase) Execute(ctx context.Context, query CheckAvailabilityQuery) (*dto.AvailabilityDTO, error) {
	interval, err := parseInterval(query.StartTime, query.EndTime)
	if err != nil {
		return nil, err
	}

	r, err := uc.roomRepo.GetByID(ctx, query.RoomID)
	if err != nil {
		uc.logger.Errorw("failed to get room", "room_id", query.RoomID, "error", err)
		return nil, errors.NewInternalError("failed to get room")
	}
	if r == nil {
		return nil, errors.NewNotFoundError("room not found")
	}

	probe := meeting.ReconstructMeeting(query.ExcludeMeetingID, "", query.RoomID, 0, interval, nil, nil, interval.Start, interval.Start)
	blocking, current, err := slotChecker{uc.meetingRepo, uc.statusRepo}.blocking(ctx, probe)
	if err != nil {
		uc.logger.Errorw("failed to check room availability", "room_id", query.RoomID, "error", err)
		return nil, errors.NewInternalError("failed to check room availability")
	}

	return &dto.AvailabilityDTO{
		RoomID:    query.RoomID,
		StartTime: interval.Start,
		EndTime:   interval.End,
		Available: len(blocking) == 0,
		Conflicts: dto.ToConflictDTOs(blocking, current),
	}, nil
}
