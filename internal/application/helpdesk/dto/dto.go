package dto

import (
	"time"

	"github.com/opsportal/opsportal/internal/domain/helpdesk"
)

type TicketDTO struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	Details        string     `json:"details"`
	DetailsHTML    string     `json:"details_html"`
	UserID         uint       `json:"user_id"`
	AssignedBy     *uint      `json:"assigned_by"`
	AssignedTo     *uint      `json:"assigned_to"`
	Assignees      []uint     `json:"assignees"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	RequestTime    time.Time  `json:"request_time"`
	LastUpdateTime time.Time  `json:"last_update_time"`
	ResolveTime    *time.Time `json:"resolve_time"`
	Trashed        bool       `json:"trashed"`
	TrashedAt      *time.Time `json:"trashed_at,omitempty"`
}

// ToTicketDTO renders t with its ordered assignee list; detailsHTML is the
// sanitized markdown rendering of the stored details.
func ToTicketDTO(t *helpdesk.Ticket, assignees []uint, detailsHTML string) *TicketDTO {
	if t == nil {
		return nil
	}
	if assignees == nil {
		assignees = []uint{}
	}
	return &TicketDTO{
		ID:             t.ID(),
		Title:          t.Title(),
		Details:        t.Details(),
		DetailsHTML:    detailsHTML,
		UserID:         t.UserID(),
		AssignedBy:     t.AssignedBy(),
		AssignedTo:     t.AssignedTo(),
		Assignees:      assignees,
		Status:         t.Status().String(),
		Priority:       t.Priority().String(),
		RequestTime:    t.RequestTime(),
		LastUpdateTime: t.LastUpdateTime(),
		ResolveTime:    t.ResolveTime(),
		Trashed:        t.IsTrashed(),
		TrashedAt:      t.TrashedAt(),
	}
}
