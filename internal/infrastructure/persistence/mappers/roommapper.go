package mappers

import (
	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/biztime"
)

type RoomMapper interface {
	ToModel(r *room.Room) *models.RoomModel
	ToEntity(model *models.RoomModel) *room.Room
	ToEntities(list []*models.RoomModel) []*room.Room
}

type RoomMapperImpl struct{}

func NewRoomMapper() RoomMapper {
	return &RoomMapperImpl{}
}

func (m *RoomMapperImpl) ToModel(r *room.Room) *models.RoomModel {
	return &models.RoomModel{
		ID:              r.ID(),
		Name:            r.Name(),
		Capacity:        r.Capacity(),
		Seating:         string(r.Seating()),
		HasPresentation: r.HasPresentation(),
		Image:           r.Image(),
		CreatedAt:       biztime.ToMillis(r.CreatedAt()),
		UpdatedAt:       biztime.ToMillis(r.UpdatedAt()),
	}
}

func (m *RoomMapperImpl) ToEntity(model *models.RoomModel) *room.Room {
	return room.ReconstructRoom(
		model.ID,
		model.Name,
		model.Capacity,
		room.Seating(model.Seating),
		model.HasPresentation,
		model.Image,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *RoomMapperImpl) ToEntities(list []*models.RoomModel) []*room.Room {
	out := make([]*room.Room, 0, len(list))
	for _, model := range list {
		out = append(out, m.ToEntity(model))
	}
	return out
}
