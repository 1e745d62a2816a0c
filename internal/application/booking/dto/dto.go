package dto

import (
	"time"

	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/shared/mapper"
)

type MeetingDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	RoomID    uint      `json:"room_id"`
	UserID    uint      `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	WingID    *uint     `json:"wing_id"`
	SubwID    *uint     `json:"subw_id"`
	Status    string    `json:"status"`
	Attendees []uint    `json:"attendees"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StatusEntryDTO struct {
	ID            uint      `json:"id"`
	MeetingID     uint      `json:"meeting_id"`
	Status        string    `json:"status"`
	ApprovedBy    *uint     `json:"approved_by"`
	DeclinedBy    *uint     `json:"declined_by"`
	DeclineReason *string   `json:"decline_reason"`
	ChangedAt     time.Time `json:"changed_at"`
}

// ConflictDTO is one booking that blocks a requested window. It is returned as the 409 payload.
type ConflictDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	RoomID    uint      `json:"room_id"`
	UserID    uint      `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type AvailabilityDTO struct {
	RoomID    uint          `json:"room_id"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Available bool          `json:"available"`
	Conflicts []ConflictDTO `json:"conflicts"`
}

// ToMeetingDTO renders m with its current status. A meeting without history reads as pending.
func ToMeetingDTO(m *meeting.Meeting, current *meeting.StatusEntry, attendees []uint) *MeetingDTO {
	if m == nil {
		return nil
	}
	if attendees == nil {
		attendees = []uint{}
	}
	iv := m.Interval()
	return &MeetingDTO{
		ID:        m.ID(),
		Title:     m.Title(),
		RoomID:    m.RoomID(),
		UserID:    m.UserID(),
		StartTime: iv.Start,
		EndTime:   iv.End,
		WingID:    m.WingID(),
		SubwID:    m.SubwID(),
		Status:    statusOf(current),
		Attendees: attendees,
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func ToStatusEntryDTO(e *meeting.StatusEntry) StatusEntryDTO {
	return StatusEntryDTO{
		ID:            e.ID(),
		MeetingID:     e.MeetingID(),
		Status:        e.Status().String(),
		ApprovedBy:    e.ApprovedBy(),
		DeclinedBy:    e.DeclinedBy(),
		DeclineReason: e.DeclineReason(),
		ChangedAt:     e.ChangedAt(),
	}
}

func ToStatusEntryDTOs(entries []*meeting.StatusEntry) []StatusEntryDTO {
	return mapper.MapSlice(entries, ToStatusEntryDTO)
}

func ToConflictDTOs(meetings []*meeting.Meeting, current map[uint]*meeting.StatusEntry) []ConflictDTO {
	return mapper.MapSlice(meetings, func(m *meeting.Meeting) ConflictDTO {
		iv := m.Interval()
		return ConflictDTO{
			ID:        m.ID(),
			Title:     m.Title(),
			RoomID:    m.RoomID(),
			UserID:    m.UserID(),
			StartTime: iv.Start,
			EndTime:   iv.End,
			Status:    statusOf(current[m.ID()]),
		}
	})
}

func statusOf(e *meeting.StatusEntry) string {
	if e == nil {
		return meeting.StatusPending.String()
	}
	return e.Status().String()
}
