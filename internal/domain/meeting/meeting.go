// Package meeting models room bookings, their append-only approval history and
// their attendee sets.
package meeting

import (
	"fmt"
	"strings"
	"time"
)

type Meeting struct {
	id        uint
	title     string
	roomID    uint
	userID    uint
	interval  Interval
	wingID    *uint
	subwID    *uint
	createdAt time.Time
	updatedAt time.Time
}

func NewMeeting(title string, roomID, userID uint, interval Interval, wingID, subwID *uint) (*Meeting, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("meeting title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("meeting title exceeds maximum length of 200 characters")
	}
	if roomID == 0 {
		return nil, fmt.Errorf("room ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()
	return &Meeting{
		title:     title,
		roomID:    roomID,
		userID:    userID,
		interval:  interval,
		wingID:    wingID,
		subwID:    subwID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructMeeting(
	id uint,
	title string,
	roomID, userID uint,
	interval Interval,
	wingID, subwID *uint,
	createdAt, updatedAt time.Time,
) *Meeting {
	return &Meeting{
		id:        id,
		title:     title,
		roomID:    roomID,
		userID:    userID,
		interval:  interval,
		wingID:    wingID,
		subwID:    subwID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (m *Meeting) ID() uint {
	return m.id
}

func (m *Meeting) Title() string {
	return m.title
}

func (m *Meeting) RoomID() uint {
	return m.roomID
}

func (m *Meeting) UserID() uint {
	return m.userID
}

func (m *Meeting) Interval() Interval {
	return m.interval
}

func (m *Meeting) WingID() *uint {
	return m.wingID
}

func (m *Meeting) SubwID() *uint {
	return m.subwID
}

func (m *Meeting) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Meeting) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *Meeting) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("meeting ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("meeting ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Meeting) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("meeting title is required")
	}
	m.title = title
	m.updatedAt = time.Now().UTC()
	return nil
}

// Reschedule moves the meeting to another room or window. Overlap is checked by the caller.
func (m *Meeting) Reschedule(roomID uint, interval Interval) error {
	if roomID == 0 {
		return fmt.Errorf("room ID is required")
	}
	m.roomID = roomID
	m.interval = interval
	m.updatedAt = time.Now().UTC()
	return nil
}

func (m *Meeting) SetOrgUnit(wingID, subwID *uint) {
	m.wingID = wingID
	m.subwID = subwID
	m.updatedAt = time.Now().UTC()
}

// ConflictsWith reports whether other blocks this meeting's slot: same room,
// a different meeting, and an intersecting window.
func (m *Meeting) ConflictsWith(other *Meeting) bool {
	if other == nil || other.roomID != m.roomID {
		return false
	}
	if m.id != 0 && other.id == m.id {
		return false
	}
	return m.interval.Overlaps(other.interval)
}
