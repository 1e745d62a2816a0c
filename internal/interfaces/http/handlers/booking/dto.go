package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/opsportal/opsportal/internal/application/booking/usecases"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

type CreateMeetingRequest struct {
	Title     string       `json:"title" form:"title" binding:"required,max=200"`
	RoomID    uint         `json:"room_id" form:"room_id" binding:"required"`
	StartTime string       `json:"start_time" form:"start_time" binding:"required"`
	EndTime   string       `json:"end_time" form:"end_time" binding:"required"`
	WingID    *uint        `json:"wing_id,omitempty" form:"wing_id"`
	SubwID    *uint        `json:"subw_id,omitempty" form:"subw_id"`
	Attendees utils.IDList `json:"attendees" form:"-"`
}

func (r *CreateMeetingRequest) ToCommand(userID uint) usecases.CreateMeetingCommand {
	return usecases.CreateMeetingCommand{
		Title:     r.Title,
		RoomID:    r.RoomID,
		UserID:    userID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		WingID:    r.WingID,
		SubwID:    r.SubwID,
		Attendees: r.Attendees.IDs,
	}
}

// UpdateMeetingRequest leaves a field unchanged when it is omitted.
type UpdateMeetingRequest struct {
	Title     *string      `json:"title" form:"title" binding:"omitempty,max=200"`
	RoomID    *uint        `json:"room_id" form:"room_id"`
	StartTime *string      `json:"start_time" form:"start_time"`
	EndTime   *string      `json:"end_time" form:"end_time"`
	WingID    *uint        `json:"wing_id" form:"wing_id"`
	SubwID    *uint        `json:"subw_id" form:"subw_id"`
	Attendees utils.IDList `json:"attendees" form:"-"`
}

func (r *UpdateMeetingRequest) ToCommand(meetingID, actorID uint, role authorization.UserRole) usecases.UpdateMeetingCommand {
	return usecases.UpdateMeetingCommand{
		MeetingID: meetingID,
		ActorID:   actorID,
		ActorRole: role,
		Title:     r.Title,
		RoomID:    r.RoomID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		WingID:    r.WingID,
		SubwID:    r.SubwID,
		Attendees: r.Attendees,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
	Reason string `json:"reason" form:"reason" binding:"max=1000"`
}

type AddAttendeeRequest struct {
	UserID uint `json:"user_id" form:"user_id" binding:"required"`
}

type ReplaceAttendeesRequest struct {
	UserIDs utils.IDList `json:"user_ids" form:"-"`
}

func parseListMeetingsQuery(c *gin.Context) (usecases.ListMeetingsQuery, error) {
	roomID, err := utils.QueryUint(c, "room_id")
	if err != nil {
		return usecases.ListMeetingsQuery{}, err
	}
	userID, err := utils.QueryUint(c, "user_id")
	if err != nil {
		return usecases.ListMeetingsQuery{}, err
	}
	return usecases.ListMeetingsQuery{
		RoomID: roomID,
		UserID: userID,
		From:   c.Query("from"),
		To:     c.Query("to"),
		Status: c.Query("status"),
	}, nil
}

func parseAvailabilityQuery(c *gin.Context, roomID uint) (usecases.CheckAvailabilityQuery, error) {
	query := usecases.CheckAvailabilityQuery{
		RoomID:    roomID,
		StartTime: c.Query("start"),
		EndTime:   c.Query("end"),
	}
	if query.StartTime == "" || query.EndTime == "" {
		return query, errors.NewValidationError("start and end are required")
	}
	exclude, err := utils.QueryUint(c, "exclude_meeting_id")
	if err != nil {
		return query, err
	}
	if exclude != nil {
		query.ExcludeMeetingID = *exclude
	}
	return query, nil
}
