package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type ListMeetingsQuery struct {
	RoomID *uint
	UserID *uint
	// From and To are optional RFC3339 bounds.
	From   string
	To     string
	Status string
}

type ListMeetingsUseCase struct {
	meetingRepo  meeting.Repository
	statusRepo   meeting.StatusRepository
	attendeeRepo meeting.AttendeeRepository
	logger       logger.Interface
}

func NewListMeetingsUseCase(
	meetingRepo meeting.Repository,
	statusRepo meeting.StatusRepository,
	attendeeRepo meeting.AttendeeRepository,
	logger logger.Interface,
) *ListMeetingsUseCase {
	return &ListMeetingsUseCase{
		meetingRepo:  meetingRepo,
		statusRepo:   statusRepo,
		attendeeRepo: attendeeRepo,
		logger:       logger,
	}
}

func (uc *ListMeetingsUseCase) Execute(ctx context.Context, query ListMeetingsQuery) ([]*dto.MeetingDTO, error) {
	filter := meeting.ListFilter{RoomID: query.RoomID, UserID: query.UserID}
	if query.From != "" {
		t, err := parseRFC3339(query.From, "from")
		if err != nil {
			return nil, err
		}
		filter.From = t.UnixMilli()
	}
	if query.To != "" {
		t, err := parseRFC3339(query.To, "to")
		if err != nil {
			return nil, err
		}
		filter.To = t.UnixMilli()
	}

	var wantStatus meeting.Status
	if query.Status != "" {
		st, err := meeting.ParseStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		wantStatus = st
	}

	meetings, err := uc.meetingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list meetings", "error", err)
		return nil, errors.NewInternalError("failed to list meetings")
	}

	ids := meeting.IDs(meetings)
	current, err := uc.statusRepo.CurrentForMeetings(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load meeting statuses", "error", err)
		return nil, errors.NewInternalError("failed to load meeting statuses")
	}
	attendees, err := uc.attendeeRepo.ListForMeetings(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load attendees", "error", err)
		return nil, errors.NewInternalError("failed to load attendees")
	}

	result := make([]*dto.MeetingDTO, 0, len(meetings))
	for _, m := range meetings {
		d := dto.ToMeetingDTO(m, current[m.ID()], attendees[m.ID()])
		if wantStatus != "" && d.Status != wantStatus.String() {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}
