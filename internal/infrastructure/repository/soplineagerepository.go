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
)

// SopLineageRepositoryImpl appends to sop_files. Rows are only removed with their document.
type SopLineageRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SopMapper
}

func NewSopLineageRepository(gdb *gorm.DB) sop.LineageRepository {
	return &SopLineageRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewSopMapper(),
	}
}

func (r *SopLineageRepositoryImpl) Append(ctx context.Context, entry *sop.LineageEntry) error {
	model := r.mapper.LineageToModel(entry)
	model.ID = 0
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append sop lineage entry: %w", err)
	}
	return entry.SetID(model.ID)
}

func (r *SopLineageRepositoryImpl) ListBySop(ctx context.Context, sopID uint) ([]*sop.LineageEntry, error) {
	var list []*models.SopFileModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("sop_id = ?", sopID).
		Order("timestamp ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list sop lineage: %w", err)
	}

	out := make([]*sop.LineageEntry, 0, len(list))
	for _, model := range list {
		out = append(out, r.mapper.LineageToEntity(model))
	}
	return out, nil
}

func (r *SopLineageRepositoryImpl) Latest(ctx context.Context, sopID uint) (*sop.LineageEntry, error) {
	var model models.SopFileModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("sop_id = ?", sopID).
		Order("timestamp DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest sop lineage entry: %w", err)
	}
	return r.mapper.LineageToEntity(&model), nil
}

func (r *SopLineageRepositoryImpl) DeleteBySop(ctx context.Context, sopID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("sop_id = ?", sopID).
		Delete(&models.SopFileModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sop lineage: %w", err)
	}
	return nil
}
