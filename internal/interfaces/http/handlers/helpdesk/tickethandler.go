package helpdesk

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsportal/opsportal/internal/application/helpdesk/usecases"
	"github.com/opsportal/opsportal/internal/interfaces/http/middleware"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	updateTicketUC   usecases.UpdateTicketExecutor
	setAssignmentsUC usecases.SetAssignmentsExecutor
	lifecycleUC      usecases.TicketLifecycleExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	setAssignmentsUC usecases.SetAssignmentsExecutor,
	lifecycleUC usecases.TicketLifecycleExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		updateTicketUC:   updateTicketUC,
		setAssignmentsUC: setAssignmentsUC,
		lifecycleUC:      lifecycleUC,
		logger:           logger,
	}
}

// CreateTicket handles POST /helpdesk/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, _, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req CreateTicketRequest
	if err := utils.BindBody(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	req.AssignedIDs = utils.FormIDList(c, assigneesField, req.AssignedIDs)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /helpdesk/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /helpdesk/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PATCH /helpdesk/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, role, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req UpdateTicketRequest
	if err := utils.BindBody(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	req.AssignedIDs = utils.FormIDList(c, assigneesField, req.AssignedIDs)

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, userID, role))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// SetAssignments handles PUT /helpdesk/tickets/:id/assignments
func (h *TicketHandler) SetAssignments(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, _, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req SetAssignmentsRequest
	if err := utils.BindBody(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	req.AssignedIDs = utils.FormIDList(c, assigneesField, req.AssignedIDs)
	if !req.AssignedIDs.Present {
		utils.ErrorResponseWithError(c, errors.NewValidationError("assigned_ids is required"))
		return
	}

	cmd := usecases.SetAssignmentsCommand{
		TicketID:    ticketID,
		AssigneeIDs: req.AssignedIDs.IDs,
		ActorID:     userID,
	}
	result, err := h.setAssignmentsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assignments updated", result)
}

// TrashTicket handles POST /helpdesk/tickets/:id/trash
func (h *TicketHandler) TrashTicket(c *gin.Context) {
	cmd, ok := h.actionCommand(c)
	if !ok {
		return
	}

	result, err := h.lifecycleUC.Trash(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket moved to trash", result)
}

// RestoreTicket handles POST /helpdesk/tickets/:id/restore
func (h *TicketHandler) RestoreTicket(c *gin.Context) {
	cmd, ok := h.actionCommand(c)
	if !ok {
		return
	}

	result, err := h.lifecycleUC.Restore(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket restored", result)
}

// DeleteTicket handles DELETE /helpdesk/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	cmd, ok := h.actionCommand(c)
	if !ok {
		return
	}

	if err := h.lifecycleUC.Delete(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// actionCommand writes the error response itself and reports false when the request is unusable.
func (h *TicketHandler) actionCommand(c *gin.Context) (usecases.TicketActionCommand, bool) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.TicketActionCommand{}, false
	}
	userID, role, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return usecases.TicketActionCommand{}, false
	}
	return usecases.TicketActionCommand{TicketID: ticketID, ActorID: userID, ActorRole: role}, true
}
