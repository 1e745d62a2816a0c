package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type GetMeetingQuery struct {
	MeetingID uint
}

type GetMeetingUseCase struct {
	meetingRepo  meeting.Repository
	statusRepo   meeting.StatusRepository
	attendeeRepo meeting.AttendeeRepository
	logger       logger.Interface
}

func NewGetMeetingUseCase(
	meetingRepo meeting.Repository,
	statusRepo meeting.StatusRepository,
	attendeeRepo meeting.AttendeeRepository,
	logger logger.Interface,
) *GetMeetingUseCase {
	return &GetMeetingUseCase{
		meetingRepo:  meetingRepo,
		statusRepo:   statusRepo,
		attendeeRepo: attendeeRepo,
		logger:       logger,
	}
}

func (uc *GetMeetingUseCase) Execute(ctx context.Context, query GetMeetingQuery) (*dto.MeetingDTO, error) {
	m, err := uc.meetingRepo.GetByID(ctx, query.MeetingID)
	if err != nil {
		uc.logger.Errorw("failed to get meeting", "meeting_id", query.MeetingID, "error", err)
		return nil, errors.NewInternalError("failed to get meeting")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("meeting not found")
	}

	current, err := uc.statusRepo.CurrentForMeetings(ctx, []uint{m.ID()})
	if err != nil {
		uc.logger.Errorw("failed to load meeting status", "meeting_id", m.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load meeting status")
	}
	attendees, err := uc.attendeeRepo.List(ctx, m.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attendees", "meeting_id", m.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list attendees")
	}

	return dto.ToMeetingDTO(m, current[m.ID()], attendees), nil
}
