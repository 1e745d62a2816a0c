package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/db"
)

type TicketAssignmentRepositoryImpl struct {
	db *gorm.DB
}

func NewTicketAssignmentRepository(gdb *gorm.DB) helpdesk.AssignmentRepository {
	return &TicketAssignmentRepositoryImpl{db: gdb}
}

func (r *TicketAssignmentRepositoryImpl) ListForTicket(ctx context.Context, ticketID uint) ([]uint, error) {
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TicketAssignmentModel{}).
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket assignments: %w", err)
	}
	return ids, nil
}

// ReplaceForTicket inserts rows one by one in list order so that join-table ids
// reflect assignment order.
func (r *TicketAssignmentRepositoryImpl) ReplaceForTicket(ctx context.Context, ticketID uint, userIDs []uint, assignedBy uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketAssignmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear ticket assignments: %w", err)
	}

	now := time.Now().UnixMilli()
	for _, userID := range userIDs {
		row := &models.TicketAssignmentModel{
			TicketID:   ticketID,
			UserID:     userID,
			AssignedBy: assignedBy,
			CreatedAt:  now,
		}
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to insert ticket assignment: %w", err)
		}
	}
	return nil
}

func (r *TicketAssignmentRepositoryImpl) GetAssignmentsForTickets(ctx context.Context, ticketIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return result, nil
	}

	var rows []*models.TicketAssignmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id IN ?", ticketIDs).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to batch load ticket assignments: %w", err)
	}
	for _, row := range rows {
		result[row.TicketID] = append(result[row.TicketID], row.UserID)
	}
	return result, nil
}

var _ helpdesk.AssignmentRepository = (*TicketAssignmentRepositoryImpl)(nil)
