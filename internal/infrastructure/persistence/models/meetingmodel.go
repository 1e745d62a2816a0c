package models

import "github.com/opsportal/opsportal/internal/shared/constants"

// MeetingModel stores its window as epoch milliseconds so the overlap query is
// a plain integer comparison on every driver.
type MeetingModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:200;not null"`
	RoomID    uint   `gorm:"not null;index:idx_meetings_room_window,priority:1"`
	UserID    uint   `gorm:"not null;index"`
	StartTime int64  `gorm:"not null;index:idx_meetings_room_window,priority:2"`
	EndTime   int64  `gorm:"not null;index:idx_meetings_room_window,priority:3"`
	WingID    *uint
	SubwID    *uint
	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null"`
}

func (MeetingModel) TableName() string {
	return constants.TableMeetings
}

// MeetingStatusModel rows are never updated once written.
type MeetingStatusModel struct {
	ID            uint    `gorm:"primaryKey"`
	MeetingID     uint    `gorm:"not null;index:idx_meeting_statuses_current,priority:1"`
	Status        string  `gorm:"size:20;not null"`
	ApprovedBy    *uint
	DeclinedBy    *uint
	DeclineReason *string `gorm:"type:text"`
	ChangedAt     int64   `gorm:"not null;index:idx_meeting_statuses_current,priority:2"`
}

func (MeetingStatusModel) TableName() string {
	return constants.TableMeetingStatuses
}

type MeetingAttendeeModel struct {
	MeetingID   uint  `gorm:"primaryKey;autoIncrement:false"`
	AttendantID uint  `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null"`
}

func (MeetingAttendeeModel) TableName() string {
	return constants.TableMeetingAttendees
}
