package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/room/dto"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type CreateRoomCommand struct {
	Name            string
	Capacity        int
	Seating         string
	HasPresentation bool
	Image           string
}

// UpdateRoomCommand carries optional fields; nil keeps the stored value.
type UpdateRoomCommand struct {
	RoomID          uint
	Name            *string
	Capacity        *int
	Seating         *string
	HasPresentation *bool
	Image           *string
}

type RoomExecutor interface {
	Create(ctx context.Context, cmd CreateRoomCommand) (*dto.RoomDTO, error)
	Update(ctx context.Context, cmd UpdateRoomCommand) (*dto.RoomDTO, error)
	Delete(ctx context.Context, roomID uint) error
	Get(ctx context.Context, roomID uint) (*dto.RoomDTO, error)
	List(ctx context.Context) ([]*dto.RoomDTO, error)
}

type RoomUseCase struct {
	roomRepo    room.Repository
	meetingRepo meeting.Repository
	logger      logger.Interface
}

func NewRoomUseCase(roomRepo room.Repository, meetingRepo meeting.Repository, logger logger.Interface) *RoomUseCase {
	return &RoomUseCase{
		roomRepo:    roomRepo,
		meetingRepo: meetingRepo,
		logger:      logger,
	}
}

func (uc *RoomUseCase) Create(ctx context.Context, cmd CreateRoomCommand) (*dto.RoomDTO, error) {
	uc.logger.Infow("executing create room use case", "name", cmd.Name)

	r, err := room.NewRoom(cmd.Name, cmd.Capacity, room.Seating(cmd.Seating), cmd.HasPresentation, cmd.Image)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.roomRepo.Create(ctx, r); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create room", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to create room")
	}

	uc.logger.Infow("room created successfully", "room_id", r.ID())
	return dto.ToRoomDTO(r), nil
}

func (uc *RoomUseCase) Update(ctx context.Context, cmd UpdateRoomCommand) (*dto.RoomDTO, error) {
	r, err := uc.load(ctx, cmd.RoomID)
	if err != nil {
		return nil, err
	}

	name, capacity, seating, hasPresentation, image := r.Name(), r.Capacity(), r.Seating(), r.HasPresentation(), r.Image()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Capacity != nil {
		capacity = *cmd.Capacity
	}
	if cmd.Seating != nil {
		seating = room.Seating(*cmd.Seating)
	}
	if cmd.HasPresentation != nil {
		hasPresentation = *cmd.HasPresentation
	}
	if cmd.Image != nil {
		image = *cmd.Image
	}

	if err := r.Update(name, capacity, seating, hasPresentation, image); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.roomRepo.Update(ctx, r); err != nil {
		if errors.IsConflictError(err) || errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update room", "room_id", cmd.RoomID, "error", err)
		return nil, errors.NewInternalError("failed to update room")
	}

	uc.logger.Infow("room updated successfully", "room_id", r.ID())
	return dto.ToRoomDTO(r), nil
}

// Delete refuses rooms that still have bookings.
func (uc *RoomUseCase) Delete(ctx context.Context, roomID uint) error {
	if _, err := uc.load(ctx, roomID); err != nil {
		return err
	}

	count, err := uc.meetingRepo.CountByRoom(ctx, roomID)
	if err != nil {
		uc.logger.Errorw("failed to count room meetings", "room_id", roomID, "error", err)
		return errors.NewInternalError("failed to delete room")
	}
	if count > 0 {
		return errors.NewConflictError("room has meetings and cannot be deleted")
	}

	if err := uc.roomRepo.Delete(ctx, roomID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete room", "room_id", roomID, "error", err)
		return errors.NewInternalError("failed to delete room")
	}

	uc.logger.Infow("room deleted successfully", "room_id", roomID)
	return nil
}

func (uc *RoomUseCase) Get(ctx context.Context, roomID uint) (*dto.RoomDTO, error) {
	r, err := uc.load(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return dto.ToRoomDTO(r), nil
}

func (uc *RoomUseCase) List(ctx context.Context) ([]*dto.RoomDTO, error) {
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list rooms", "error", err)
		return nil, errors.NewInternalError("failed to list rooms")
	}
	return dto.ToRoomDTOs(rooms), nil
}

func (uc *RoomUseCase) load(ctx context.Context, roomID uint) (*room.Room, error) {
	if roomID == 0 {
		return nil, errors.NewValidationError("room ID is required")
	}
	r, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		uc.logger.Errorw("failed to get room", "room_id", roomID, "error", err)
		return nil, errors.NewInternalError("failed to get room")
	}
	if r == nil {
		return nil, errors.NewNotFoundError("room not found")
	}
	return r, nil
}
