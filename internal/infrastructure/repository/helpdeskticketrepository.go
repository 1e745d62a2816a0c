package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/mappers"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/db"
	apperrors "github.com/opsportal/opsportal/internal/shared/errors"
)

type HelpdeskTicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.HelpdeskTicketMapper
}

func NewHelpdeskTicketRepository(gdb *gorm.DB) helpdesk.TicketRepository {
	return &HelpdeskTicketRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewHelpdeskTicketMapper(),
	}
}

func (r *HelpdeskTicketRepositoryImpl) Create(ctx context.Context, t *helpdesk.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create helpdesk ticket: %w", err)
	}
	return t.SetID(model.ID)
}

// Update writes every mutable column. Soft-deleted rows are not touched.
func (r *HelpdeskTicketRepositoryImpl) Update(ctx context.Context, t *helpdesk.Ticket) error {
	model := r.mapper.ToModel(t)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.HelpdeskTicketModel{}).
		Scopes(db.NotDeleted()).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":            model.Title,
			"details":          model.Details,
			"assigned_by":      model.AssignedBy,
			"assigned_to":      model.AssignedTo,
			"status":           model.Status,
			"priority":         model.Priority,
			"last_update_time": model.LastUpdateTime,
			"resolve_time":     model.ResolveTime,
			"trashed_at":       model.TrashedAt,
			"deleted_at":       model.DeletedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update helpdesk ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *HelpdeskTicketRepositoryImpl) GetByID(ctx context.Context, id uint) (*helpdesk.Ticket, error) {
	var model models.HelpdeskTicketModel
	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.NotDeleted()).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get helpdesk ticket by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *HelpdeskTicketRepositoryImpl) List(ctx context.Context, filter helpdesk.TicketFilter) ([]*helpdesk.Ticket, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.HelpdeskTicketModel{}).Scopes(db.NotDeleted())

	switch filter.Trash {
	case helpdesk.TrashOnly:
		query = query.Scopes(db.OnlyTrashed())
	case helpdesk.TrashInclude:
	default:
		query = query.Scopes(db.NotTrashed())
	}

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.ReporterID != nil {
		query = query.Where("user_id = ?", *filter.ReporterID)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}

	var list []*models.HelpdeskTicketModel
	if err := query.Order("request_time DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list helpdesk tickets: %w", err)
	}
	return r.mapper.ToEntities(list)
}
