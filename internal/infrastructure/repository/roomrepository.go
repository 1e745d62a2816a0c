package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/mappers"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/db"
	apperrors "github.com/opsportal/opsportal/internal/shared/errors"
)

type RoomRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RoomMapper
}

func NewRoomRepository(gdb *gorm.DB) room.Repository {
	return &RoomRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewRoomMapper(),
	}
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, rm *room.Room) error {
	model := r.mapper.ToModel(rm)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("room name already exists", rm.Name())
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return rm.SetID(model.ID)
}

func (r *RoomRepositoryImpl) Update(ctx context.Context, rm *room.Room) error {
	model := r.mapper.ToModel(rm)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.RoomModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":             model.Name,
			"capacity":         model.Capacity,
			"seating":          model.Seating,
			"has_presentation": model.HasPresentation,
			"image":            model.Image,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("room name already exists", rm.Name())
		}
		return fmt.Errorf("failed to update room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("room not found")
	}
	return nil
}

func (r *RoomRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.RoomModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("room not found")
	}
	return nil
}

func (r *RoomRepositoryImpl) GetByID(ctx context.Context, id uint) (*room.Room, error) {
	var model models.RoomModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *RoomRepositoryImpl) GetByName(ctx context.Context, name string) (*room.Room, error) {
	var model models.RoomModel
	if err := db.GetTxFromContext(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room by name: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *RoomRepositoryImpl) List(ctx context.Context) ([]*room.Room, error) {
	var list []*models.RoomModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return r.mapper.ToEntities(list), nil
}
