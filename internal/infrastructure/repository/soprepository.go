package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsportal/opsportal/internal/domain/sop"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/mappers"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/db"
	apperrors "github.com/opsportal/opsportal/internal/shared/errors"
)

type SopRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SopMapper
}

func NewSopRepository(gdb *gorm.DB) sop.Repository {
	return &SopRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewSopMapper(),
	}
}

func (r *SopRepositoryImpl) Create(ctx context.Context, s *sop.Sop) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create sop: %w", err)
	}
	return s.SetID(model.ID)
}

func (r *SopRepositoryImpl) Update(ctx context.Context, s *sop.Sop) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SopModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"version":    model.Version,
			"file_url":   model.FileURL,
			"wing_id":    model.WingID,
			"subw_id":    model.SubwID,
			"visibility": model.Visibility,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update sop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("sop not found")
	}
	return nil
}

func (r *SopRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SopModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("sop not found")
	}
	return nil
}

func (r *SopRepositoryImpl) GetByID(ctx context.Context, id uint) (*sop.Sop, error) {
	var model models.SopModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sop by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SopRepositoryImpl) List(ctx context.Context, filter sop.ListFilter) ([]*sop.Sop, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SopModel{})
	if filter.WingID != nil {
		query = query.Where("wing_id = ?", *filter.WingID)
	}
	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+filter.Search+"%")
	}

	var list []*models.SopModel
	if err := query.Order("updated_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list sops: %w", err)
	}
	return r.mapper.ToEntities(list)
}
