package helpdesk

import (
	"github.com/gin-gonic/gin"

	"github.com/opsportal/opsportal/internal/application/helpdesk/usecases"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

// assigneesField accepts a number, a comma-separated string or an array.
const assigneesField = "assigned_ids"

type CreateTicketRequest struct {
	Title       string       `json:"title" form:"title" binding:"required,max=200"`
	Details     string       `json:"details" form:"details" binding:"max=20000"`
	Priority    string       `json:"priority" form:"priority"`
	AssignedIDs utils.IDList `json:"assigned_ids" form:"-"`
}

func (r *CreateTicketRequest) ToCommand(reporterID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:      r.Title,
		Details:    r.Details,
		Priority:   r.Priority,
		ReporterID: reporterID,
		Assignees:  r.AssignedIDs,
	}
}

// UpdateTicketRequest leaves omitted fields untouched. An empty assigned_ids unassigns everyone.
type UpdateTicketRequest struct {
	Title       *string      `json:"title" form:"title" binding:"omitempty,max=200"`
	Details     *string      `json:"details" form:"details" binding:"omitempty,max=20000"`
	Status      *string      `json:"status" form:"status"`
	Priority    *string      `json:"priority" form:"priority"`
	AssignedIDs utils.IDList `json:"assigned_ids" form:"-"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, actorID uint, role authorization.UserRole) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:  ticketID,
		ActorID:   actorID,
		ActorRole: role,
		Title:     r.Title,
		Details:   r.Details,
		Status:    r.Status,
		Priority:  r.Priority,
		Assignees: r.AssignedIDs,
	}
}

type SetAssignmentsRequest struct {
	AssignedIDs utils.IDList `json:"assigned_ids" form:"-"`
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	reporterID, err := utils.QueryUint(c, "user_id")
	if err != nil {
		return usecases.ListTicketsQuery{}, err
	}
	assignedTo, err := utils.QueryUint(c, "assigned_to")
	if err != nil {
		return usecases.ListTicketsQuery{}, err
	}
	return usecases.ListTicketsQuery{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		ReporterID: reporterID,
		AssignedTo: assignedTo,
		Trashed:    c.Query("trashed"),
	}, nil
}
