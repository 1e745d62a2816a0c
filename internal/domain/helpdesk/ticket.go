// Package helpdesk models support tickets and their replaceable assignee set.
package helpdesk

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/opsportal/opsportal/internal/domain/helpdesk/valueobjects"
)

// Ticket carries two independent soft markers: trashedAt hides it from default
// listings, deletedAt removes it from every live query.
type Ticket struct {
	id             uint
	title          string
	details        string
	userID         uint
	assignedBy     *uint
	assignedTo     *uint
	status         vo.TicketStatus
	priority       vo.Priority
	requestTime    time.Time
	lastUpdateTime time.Time
	resolveTime    *time.Time
	trashedAt      *time.Time
	deletedAt      *time.Time
}

func NewTicket(title, details string, reporterID uint, priority vo.Priority, now time.Time) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(details) > 10000 {
		return nil, fmt.Errorf("details exceed maximum length of 10000 characters")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now = now.UTC()
	return &Ticket{
		title:          title,
		details:        details,
		userID:         reporterID,
		status:         vo.StatusOpen,
		priority:       priority,
		requestTime:    now,
		lastUpdateTime: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title, details string,
	userID uint,
	assignedBy, assignedTo *uint,
	status vo.TicketStatus,
	priority vo.Priority,
	requestTime, lastUpdateTime time.Time,
	resolveTime, trashedAt, deletedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	return &Ticket{
		id:             id,
		title:          title,
		details:        details,
		userID:         userID,
		assignedBy:     assignedBy,
		assignedTo:     assignedTo,
		status:         status,
		priority:       priority,
		requestTime:    requestTime,
		lastUpdateTime: lastUpdateTime,
		resolveTime:    resolveTime,
		trashedAt:      trashedAt,
		deletedAt:      deletedAt,
	}, nil
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) Edit(title, details string, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.details = details
	t.touch(now)
	return nil
}

// ChangeStatus allows any move between statuses. resolve_time is stamped the first
// time the ticket becomes resolved and never moved afterwards.
func (t *Ticket) ChangeStatus(status vo.TicketStatus, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	if t.status == status {
		return nil
	}
	t.status = status
	if status.IsResolved() && t.resolveTime == nil {
		resolved := now.UTC()
		t.resolveTime = &resolved
	}
	t.touch(now)
	return nil
}

func (t *Ticket) ChangePriority(priority vo.Priority, now time.Time) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	if t.priority == priority {
		return nil
	}
	t.priority = priority
	t.touch(now)
	return nil
}

// MirrorAssignment refreshes the cached primary assignee from the current ordered
// assignee list. It must only be called alongside the write of that list.
func (t *Ticket) MirrorAssignment(assigneeIDs []uint, actorID uint, now time.Time) {
	if len(assigneeIDs) == 0 {
		t.assignedTo = nil
	} else {
		primary := assigneeIDs[0]
		t.assignedTo = &primary
	}
	t.assignedBy = &actorID
	t.touch(now)
}

func (t *Ticket) Trash(now time.Time) error {
	if t.deletedAt != nil {
		return fmt.Errorf("ticket is deleted")
	}
	if t.trashedAt != nil {
		return nil
	}
	at := now.UTC()
	t.trashedAt = &at
	return nil
}

func (t *Ticket) Restore() error {
	if t.deletedAt != nil {
		return fmt.Errorf("ticket is deleted")
	}
	t.trashedAt = nil
	return nil
}

// MarkDeleted soft-deletes the ticket. The trash marker is left as is.
func (t *Ticket) MarkDeleted(now time.Time) {
	if t.deletedAt != nil {
		return
	}
	at := now.UTC()
	t.deletedAt = &at
}

func (t *Ticket) touch(now time.Time) {
	t.lastUpdateTime = now.UTC()
}

func (t *Ticket) IsTrashed() bool {
	return t.trashedAt != nil
}

func (t *Ticket) IsDeleted() bool {
	return t.deletedAt != nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Details() string {
	return t.details
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) AssignedBy() *uint {
	return t.assignedBy
}

func (t *Ticket) AssignedTo() *uint {
	return t.assignedTo
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) RequestTime() time.Time {
	return t.requestTime
}

func (t *Ticket) LastUpdateTime() time.Time {
	return t.lastUpdateTime
}

func (t *Ticket) ResolveTime() *time.Time {
	return t.resolveTime
}

func (t *Ticket) TrashedAt() *time.Time {
	return t.trashedAt
}

func (t *Ticket) DeletedAt() *time.Time {
	return t.deletedAt
}
