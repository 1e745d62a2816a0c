package models

import "github.com/opsportal/opsportal/internal/shared/constants"

// HelpdeskTicketModel carries two independent soft markers, trashed_at and deleted_at.
// AssignedTo caches the first row of the ticket's assignment set.
type HelpdeskTicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	Title          string `gorm:"size:200;not null"`
	Details        string `gorm:"type:text"`
	UserID         uint   `gorm:"not null;index"`
	AssignedBy     *uint
	AssignedTo     *uint  `gorm:"index"`
	Status         string `gorm:"size:20;not null;index"`
	Priority       string `gorm:"size:20;not null;index"`
	RequestTime    int64  `gorm:"not null;index"`
	LastUpdateTime int64  `gorm:"not null"`
	ResolveTime    *int64
	TrashedAt      *int64 `gorm:"index"`
	DeletedAt      *int64 `gorm:"index"`
}

func (HelpdeskTicketModel) TableName() string {
	return constants.TableHelpdeskTickets
}

type TicketAssignmentModel struct {
	ID         uint  `gorm:"primaryKey"`
	TicketID   uint  `gorm:"not null;uniqueIndex:idx_ticket_assignments_pair,priority:1"`
	UserID     uint  `gorm:"not null;uniqueIndex:idx_ticket_assignments_pair,priority:2;index"`
	AssignedBy uint  `gorm:"not null"`
	CreatedAt  int64 `gorm:"not null"`
}

func (TicketAssignmentModel) TableName() string {
	return constants.TableTicketAssignments
}
