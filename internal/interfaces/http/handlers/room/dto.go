package room

import "github.com/opsportal/opsportal/internal/application/room/usecases"

type CreateRoomRequest struct {
	Name            string `json:"name" form:"name" binding:"required,max=100"`
	Capacity        int    `json:"capacity" form:"capacity" binding:"gte=0"`
	Seating         string `json:"seating" form:"seating"`
	HasPresentation bool   `json:"has_presentation" form:"has_presentation"`
	Image           string `json:"image" form:"image" binding:"max=512"`
}

func (r *CreateRoomRequest) ToCommand() usecases.CreateRoomCommand {
	return usecases.CreateRoomCommand{
		Name:            r.Name,
		Capacity:        r.Capacity,
		Seating:         r.Seating,
		HasPresentation: r.HasPresentation,
		Image:           r.Image,
	}
}

type UpdateRoomRequest struct {
	Name            *string `json:"name" form:"name" binding:"omitempty,max=100"`
	Capacity        *int    `json:"capacity" form:"capacity" binding:"omitempty,gte=0"`
	Seating         *string `json:"seating" form:"seating"`
	HasPresentation *bool   `json:"has_presentation" form:"has_presentation"`
	Image           *string `json:"image" form:"image" binding:"omitempty,max=512"`
}

func (r *UpdateRoomRequest) ToCommand(roomID uint) usecases.UpdateRoomCommand {
	return usecases.UpdateRoomCommand{
		RoomID:          roomID,
		Name:            r.Name,
		Capacity:        r.Capacity,
		Seating:         r.Seating,
		HasPresentation: r.HasPresentation,
		Image:           r.Image,
	}
}
