package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/mappers"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/db"
)

type UserDirectoryRepositoryImpl struct {
	db *gorm.DB
}

func NewUserDirectoryRepository(gdb *gorm.DB) directory.Repository {
	return &UserDirectoryRepositoryImpl{db: gdb}
}

func (r *UserDirectoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*directory.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return mappers.UserToEntity(&model), nil
}

func (r *UserDirectoryRepositoryImpl) FindByIDs(ctx context.Context, ids []uint) ([]*directory.User, error) {
	if len(ids) == 0 {
		return []*directory.User{}, nil
	}

	var list []*models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by IDs: %w", err)
	}

	out := make([]*directory.User, 0, len(list))
	for _, model := range list {
		out = append(out, mappers.UserToEntity(model))
	}
	return out, nil
}
