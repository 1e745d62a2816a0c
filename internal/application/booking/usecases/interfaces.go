package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
)

type CreateMeetingExecutor interface {
	Execute(ctx context.Context, cmd CreateMeetingCommand) (*dto.MeetingDTO, error)
}

type UpdateMeetingExecutor interface {
	Execute(ctx context.Context, cmd UpdateMeetingCommand) (*dto.MeetingDTO, error)
}

type DeleteMeetingExecutor interface {
	Execute(ctx context.Context, cmd DeleteMeetingCommand) error
}

type GetMeetingExecutor interface {
	Execute(ctx context.Context, query GetMeetingQuery) (*dto.MeetingDTO, error)
}

type ListMeetingsExecutor interface {
	Execute(ctx context.Context, query ListMeetingsQuery) ([]*dto.MeetingDTO, error)
}

type ChangeMeetingStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeMeetingStatusCommand) (*dto.StatusEntryDTO, error)
}

type ListStatusHistoryExecutor interface {
	Execute(ctx context.Context, query ListStatusHistoryQuery) ([]dto.StatusEntryDTO, error)
}

type ManageAttendeesExecutor interface {
	Add(ctx context.Context, cmd AttendeeCommand) ([]uint, error)
	Remove(ctx context.Context, cmd AttendeeCommand) ([]uint, error)
	Replace(ctx context.Context, cmd ReplaceAttendeesCommand) ([]uint, error)
}

type CheckAvailabilityExecutor interface {
	Execute(ctx context.Context, query CheckAvailabilityQuery) (*dto.AvailabilityDTO, error)
}
