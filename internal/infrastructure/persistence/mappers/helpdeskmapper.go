package mappers

import (
	"fmt"

	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	vo "github.com/opsportal/opsportal/internal/domain/helpdesk/valueobjects"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/biztime"
)

type HelpdeskTicketMapper interface {
	ToModel(t *helpdesk.Ticket) *models.HelpdeskTicketModel
	ToEntity(model *models.HelpdeskTicketModel) (*helpdesk.Ticket, error)
	ToEntities(list []*models.HelpdeskTicketModel) ([]*helpdesk.Ticket, error)
}

type HelpdeskTicketMapperImpl struct{}

func NewHelpdeskTicketMapper() HelpdeskTicketMapper {
	return &HelpdeskTicketMapperImpl{}
}

func (m *HelpdeskTicketMapperImpl) ToModel(t *helpdesk.Ticket) *models.HelpdeskTicketModel {
	return &models.HelpdeskTicketModel{
		ID:             t.ID(),
		Title:          t.Title(),
		Details:        t.Details(),
		UserID:         t.UserID(),
		AssignedBy:     t.AssignedBy(),
		AssignedTo:     t.AssignedTo(),
		Status:         t.Status().String(),
		Priority:       t.Priority().String(),
		RequestTime:    biztime.ToMillis(t.RequestTime()),
		LastUpdateTime: biztime.ToMillis(t.LastUpdateTime()),
		ResolveTime:    millisPtr(t.ResolveTime()),
		TrashedAt:      millisPtr(t.TrashedAt()),
		DeletedAt:      millisPtr(t.DeletedAt()),
	}
}

func (m *HelpdeskTicketMapperImpl) ToEntity(model *models.HelpdeskTicketModel) (*helpdesk.Ticket, error) {
	t, err := helpdesk.ReconstructTicket(
		model.ID,
		model.Title,
		model.Details,
		model.UserID,
		model.AssignedBy,
		model.AssignedTo,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		biztime.FromMillis(model.RequestTime),
		biztime.FromMillis(model.LastUpdateTime),
		timePtr(model.ResolveTime),
		timePtr(model.TrashedAt),
		timePtr(model.DeletedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket (id=%d): %w", model.ID, err)
	}
	return t, nil
}

func (m *HelpdeskTicketMapperImpl) ToEntities(list []*models.HelpdeskTicketModel) ([]*helpdesk.Ticket, error) {
	out := make([]*helpdesk.Ticket, 0, len(list))
	for _, model := range list {
		t, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
