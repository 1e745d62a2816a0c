package dto

import (
	"time"

	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/shared/mapper"
)

type RoomDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Capacity        int       `json:"capacity"`
	Seating         string    `json:"seating"`
	HasPresentation bool      `json:"has_presentation"`
	Image           string    `json:"image,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToRoomDTO(r *room.Room) *RoomDTO {
	if r == nil {
		return nil
	}
	return &RoomDTO{
		ID:              r.ID(),
		Name:            r.Name(),
		Capacity:        r.Capacity(),
		Seating:         string(r.Seating()),
		HasPresentation: r.HasPresentation(),
		Image:           r.Image(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func ToRoomDTOs(rooms []*room.Room) []*RoomDTO {
	return mapper.MapSlice(rooms, ToRoomDTO)
}
