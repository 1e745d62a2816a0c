package meeting

import "context"

type ListFilter struct {
	RoomID *uint
	UserID *uint
	// From and To bound the window in epoch milliseconds; zero means unbounded.
	From int64
	To   int64
}

type Repository interface {
	Create(ctx context.Context, m *Meeting) error
	Update(ctx context.Context, m *Meeting) error
	// Delete removes the meeting row only. Statuses and attendees are removed by their own repositories.
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil, nil when the meeting does not exist.
	GetByID(ctx context.Context, id uint) (*Meeting, error)
	List(ctx context.Context, filter ListFilter) ([]*Meeting, error)
	// FindOverlapping returns every meeting on roomID whose window intersects interval,
	// whatever its status. Filtering is left to the caller.
	FindOverlapping(ctx context.Context, roomID uint, interval Interval) ([]*Meeting, error)
	CountByRoom(ctx context.Context, roomID uint) (int64, error)
}

type StatusRepository interface {
	Append(ctx context.Context, entry *StatusEntry) error
	// ListByMeeting returns the full history newest first.
	ListByMeeting(ctx context.Context, meetingID uint) ([]*StatusEntry, error)
	// CurrentForMeetings returns the current entry per meeting id in one query.
	CurrentForMeetings(ctx context.Context, meetingIDs []uint) (map[uint]*StatusEntry, error)
	DeleteByMeeting(ctx context.Context, meetingID uint) error
}

type AttendeeRepository interface {
	// Add inserts the pair or refreshes updated_at when it already exists.
	Add(ctx context.Context, meetingID, userID uint) error
	// Remove deletes the pair; absent pairs are not an error.
	Remove(ctx context.Context, meetingID, userID uint) error
	// Replace swaps the whole set atomically. Repeated ids collapse to one row.
	Replace(ctx context.Context, meetingID uint, userIDs []uint) error
	List(ctx context.Context, meetingID uint) ([]uint, error)
	ListForMeetings(ctx context.Context, meetingIDs []uint) (map[uint][]uint, error)
	DeleteByMeeting(ctx context.Context, meetingID uint) error
}
