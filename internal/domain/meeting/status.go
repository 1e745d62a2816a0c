package meeting

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusDeclined
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("invalid meeting status: %s", s)
	}
	return st, nil
}

// StatusEntry is one immutable row of a meeting's approval history.
// approvedBy is set only on approved rows and declinedBy only on declined rows.
type StatusEntry struct {
	id            uint
	meetingID     uint
	status        Status
	approvedBy    *uint
	declinedBy    *uint
	declineReason *string
	changedAt     time.Time
}

// NewStatusEntry builds the next history row. actorID is ignored for pending rows;
// a declined row requires a reason.
func NewStatusEntry(meetingID uint, status Status, actorID uint, reason string, changedAt time.Time) (*StatusEntry, error) {
	if meetingID == 0 {
		return nil, fmt.Errorf("meeting ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid meeting status: %s", status)
	}

	e := &StatusEntry{
		meetingID: meetingID,
		status:    status,
		changedAt: changedAt.UTC(),
	}

	switch status {
	case StatusApproved:
		if actorID == 0 {
			return nil, fmt.Errorf("approver ID is required")
		}
		e.approvedBy = &actorID
	case StatusDeclined:
		if actorID == 0 {
			return nil, fmt.Errorf("decliner ID is required")
		}
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return nil, fmt.Errorf("decline reason is required")
		}
		e.declinedBy = &actorID
		e.declineReason = &reason
	}

	return e, nil
}

func ReconstructStatusEntry(
	id, meetingID uint,
	status Status,
	approvedBy, declinedBy *uint,
	declineReason *string,
	changedAt time.Time,
) *StatusEntry {
	return &StatusEntry{
		id:            id,
		meetingID:     meetingID,
		status:        status,
		approvedBy:    approvedBy,
		declinedBy:    declinedBy,
		declineReason: declineReason,
		changedAt:     changedAt,
	}
}

func (e *StatusEntry) ID() uint {
	return e.id
}

func (e *StatusEntry) MeetingID() uint {
	return e.meetingID
}

func (e *StatusEntry) Status() Status {
	return e.status
}

func (e *StatusEntry) ApprovedBy() *uint {
	return e.approvedBy
}

func (e *StatusEntry) DeclinedBy() *uint {
	return e.declinedBy
}

func (e *StatusEntry) DeclineReason() *string {
	return e.declineReason
}

func (e *StatusEntry) ChangedAt() time.Time {
	return e.changedAt
}

func (e *StatusEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("status entry ID is already set")
	}
	e.id = id
	return nil
}

// newerThan orders entries by changed_at, then id.
func (e *StatusEntry) newerThan(other *StatusEntry) bool {
	if !e.changedAt.Equal(other.changedAt) {
		return e.changedAt.After(other.changedAt)
	}
	return e.id > other.id
}

// CurrentStatus returns the entry with the latest changed_at, ties broken by the
// highest id. It returns nil for an empty history.
func CurrentStatus(entries []*StatusEntry) *StatusEntry {
	var current *StatusEntry
	for _, e := range entries {
		if e == nil {
			continue
		}
		if current == nil || e.newerThan(current) {
			current = e
		}
	}
	return current
}
