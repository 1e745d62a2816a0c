package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type ListStatusHistoryQuery struct {
	MeetingID uint
}

type ListStatusHistoryUseCase struct {
	meetingRepo meeting.Repository
	statusRepo  meeting.StatusRepository
	logger      logger.Interface
}

func NewListStatusHistoryUseCase(
	meetingRepo meeting.Repository,
	statusRepo meeting.StatusRepository,
	logger logger.Interface,
) *ListStatusHistoryUseCase {
	return &ListStatusHistoryUseCase{
		meetingRepo: meetingRepo,
		statusRepo:  statusRepo,
		logger:      logger,
	}
}

// Execute returns the history newest first.
func (uc *ListStatusHistoryUseCase) Execute(ctx context.Context, query ListStatusHistoryQuery) ([]dto.StatusEntryDTO, error) {
	m, err := uc.meetingRepo.GetByID(ctx, query.MeetingID)
	if err != nil {
		uc.logger.Errorw("failed to get meeting", "meeting_id", query.MeetingID, "error", err)
		return nil, errors.NewInternalError("failed to get meeting")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("meeting not found")
	}

	entries, err := uc.statusRepo.ListByMeeting(ctx, m.ID())
	if err != nil {
		uc.logger.Errorw("failed to list meeting statuses", "meeting_id", m.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list meeting statuses")
	}
	return dto.ToStatusEntryDTOs(entries), nil
}
