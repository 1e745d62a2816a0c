package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsportal/opsportal/internal/application/booking/usecases"
	"github.com/opsportal/opsportal/internal/interfaces/http/middleware"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

type MeetingHandler struct {
	createMeetingUC     usecases.CreateMeetingExecutor
	updateMeetingUC     usecases.UpdateMeetingExecutor
	deleteMeetingUC     usecases.DeleteMeetingExecutor
	getMeetingUC        usecases.GetMeetingExecutor
	listMeetingsUC      usecases.ListMeetingsExecutor
	changeStatusUC      usecases.ChangeMeetingStatusExecutor
	listStatusHistoryUC usecases.ListStatusHistoryExecutor
	attendeesUC         usecases.ManageAttendeesExecutor
	availabilityUC      usecases.CheckAvailabilityExecutor
	logger              logger.Interface
}

func NewMeetingHandler(
	createMeetingUC usecases.CreateMeetingExecutor,
	updateMeetingUC usecases.UpdateMeetingExecutor,
	deleteMeetingUC usecases.DeleteMeetingExecutor,
	getMeetingUC usecases.GetMeetingExecutor,
	listMeetingsUC usecases.ListMeetingsExecutor,
	changeStatusUC usecases.ChangeMeetingStatusExecutor,
	listStatusHistoryUC usecases.ListStatusHistoryExecutor,
	attendeesUC usecases.ManageAttendeesExecutor,
	availabilityUC usecases.CheckAvailabilityExecutor,
	logger logger.Interface,
) *MeetingHandler {
	return &MeetingHandler{
		createMeetingUC:     createMeetingUC,
		updateMeetingUC:     updateMeetingUC,
		deleteMeetingUC:     deleteMeetingUC,
		getMeetingUC:        getMeetingUC,
		listMeetingsUC:      listMeetingsUC,
		changeStatusUC:      changeStatusUC,
		listStatusHistoryUC: listStatusHistoryUC,
		attendeesUC:         attendeesUC,
		availabilityUC:      availabilityUC,
		logger:              logger,
	}
}

// CreateMeeting handles POST /meetings
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	userID, _, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req CreateMeetingRequest
	if err := utils.BindBody(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create meeting", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	req.Attendees = utils.FormIDList(c, "attendees", req.Attendees)

	result, err := h.createMeetingUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Meeting booked successfully")
}

// GetMeeting handles GET /meetings/:id
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meetingID, err := utils.ParseUintParam(c, "id", "meeting")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMeetingUC.Execute(c.Request.Context(), usecases.GetMeetingQuery{MeetingID: meetingID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMeetings handles GET /meetings
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	query, err := parseListMeetingsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMeetingsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateMeeting handles PUT /meetings/:id
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	meetingID, err := utils.ParseUintParam(c, "id", "meeting")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, role, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req UpdateMeetingRequest
	if err := utils.BindBody(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	req.Attendees = utils.FormIDList(c, "attendees", req.Attendees)

	result, err := h.updateMeetingUC.Execute(c.Request.Context(), req.ToCommand(meetingID, userID, role))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Meeting updated successfully", result)
}

// DeleteMeeting handles DELETE /meetings/:id
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	meetingID, err := utils.ParseUintParam(c, "id", "meeting")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, role, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	cmd := usecases.DeleteMeetingCommand{MeetingID: meetingID, ActorID: userID, ActorRole: role}
	if err := h.deleteMeetingUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ChangeStatus handles POST /meetings/:id/status
func (h *MeetingHandler) ChangeStatus(c *gin.Context) {
	meetingID, err := utils.ParseUintParam(c, "id", "meeting")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, _, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req ChangeStatusRequest
	if err := utils.BindBody(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeMeetingStatusCommand{
		MeetingID: meetingID,
		Status:    req.Status,
		ActorID:   userID,
		Reason:    req.Reason,
	}
	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Meeting status updated")
}

// ListStatusHistory handles GET /meetings/:id/statuses
func (h *MeetingHandler) ListStatusHistory(c *gin.Context) {
	meetingID, err := utils.ParseUintParam(c, "id", "meeting")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listStatusHistoryUC.Execute(c.Request.Context(), usecases.ListStatusHistoryQuery{MeetingID: meetingID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddAttendee handles POST /meetings/:id/attendees
func (h *MeetingHandler) AddAttendee(c *gin.Context) {
	meetingID, err := utils.ParseUintParam(c, "id", "meeting")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, role, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req AddAttendeeRequest
	if err := utils.BindBody(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AttendeeCommand{MeetingID: meetingID, UserID: req.UserID, ActorID: userID, ActorRole: role}
	result, err := h.attendeesUC.Add(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attendee added", result)
}

// ReplaceAttendees handles PUT /meetings/:id/attendees
func (h *MeetingHandler) ReplaceAttendees(c *gin.Context) {
	meetingID, err := utils.ParseUintParam(c, "id", "meeting")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, role, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req ReplaceAttendeesRequest
	if err := utils.BindBody(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	req.UserIDs = utils.FormIDList(c, "user_ids", req.UserIDs)
	if !req.UserIDs.Present {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user_ids is required"))
		return
	}

	cmd := usecases.ReplaceAttendeesCommand{MeetingID: meetingID, UserIDs: req.UserIDs.IDs, ActorID: userID, ActorRole: role}
	result, err := h.attendeesUC.Replace(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attendees replaced", result)
}

// RemoveAttendee handles DELETE /meetings/:id/attendees/:user_id
func (h *MeetingHandler) RemoveAttendee(c *gin.Context) {
	meetingID, err := utils.ParseUintParam(c, "id", "meeting")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	attendeeID, err := utils.ParseUintParam(c, "user_id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, role, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	cmd := usecases.AttendeeCommand{MeetingID: meetingID, UserID: attendeeID, ActorID: userID, ActorRole: role}
	result, err := h.attendeesUC.Remove(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attendee removed", result)
}

// CheckAvailability handles GET /rooms/:id/availability
func (h *MeetingHandler) CheckAvailability(c *gin.Context) {
	roomID, err := utils.ParseUintParam(c, "id", "room")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query, err := parseAvailabilityQuery(c, roomID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
