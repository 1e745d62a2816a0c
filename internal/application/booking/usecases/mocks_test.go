package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/infrastructure/email"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type mockMeetingRepository struct {
	CreateFunc          func(ctx context.Context, m *meeting.Meeting) error
	UpdateFunc          func(ctx context.Context, m *meeting.Meeting) error
	DeleteFunc          func(ctx context.Context, id uint) error
	GetByIDFunc         func(ctx context.Context, id uint) (*meeting.Meeting, error)
	ListFunc            func(ctx context.Context, filter meeting.ListFilter) ([]*meeting.Meeting, error)
	FindOverlappingFunc func(ctx context.Context, roomID uint, interval meeting.Interval) ([]*meeting.Meeting, error)
	CountByRoomFunc     func(ctx context.Context, roomID uint) (int64, error)
}

func (m *mockMeetingRepository) Create(ctx context.Context, mt *meeting.Meeting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mt)
	}
	return mt.SetID(1)
}

func (m *mockMeetingRepository) Update(ctx context.Context, mt *meeting.Meeting) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mt)
	}
	return nil
}

func (m *mockMeetingRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMeetingRepository) GetByID(ctx context.Context, id uint) (*meeting.Meeting, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMeetingRepository) List(ctx context.Context, filter meeting.ListFilter) ([]*meeting.Meeting, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockMeetingRepository) FindOverlapping(ctx context.Context, roomID uint, interval meeting.Interval) ([]*meeting.Meeting, error) {
	if m.FindOverlappingFunc != nil {
		return m.FindOverlappingFunc(ctx, roomID, interval)
	}
	return nil, nil
}

func (m *mockMeetingRepository) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	if m.CountByRoomFunc != nil {
		return m.CountByRoomFunc(ctx, roomID)
	}
	return 0, nil
}

type mockStatusRepository struct {
	appended []*meeting.StatusEntry

	AppendFunc             func(ctx context.Context, entry *meeting.StatusEntry) error
	ListByMeetingFunc      func(ctx context.Context, meetingID uint) ([]*meeting.StatusEntry, error)
	CurrentForMeetingsFunc func(ctx context.Context, ids []uint) (map[uint]*meeting.StatusEntry, error)
	DeleteByMeetingFunc    func(ctx context.Context, meetingID uint) error
}

func (m *mockStatusRepository) Append(ctx context.Context, entry *meeting.StatusEntry) error {
	m.appended = append(m.appended, entry)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return entry.SetID(uint(len(m.appended)))
}

func (m *mockStatusRepository) ListByMeeting(ctx context.Context, meetingID uint) ([]*meeting.StatusEntry, error) {
	if m.ListByMeetingFunc != nil {
		return m.ListByMeetingFunc(ctx, meetingID)
	}
	return nil, nil
}

func (m *mockStatusRepository) CurrentForMeetings(ctx context.Context, ids []uint) (map[uint]*meeting.StatusEntry, error) {
	if m.CurrentForMeetingsFunc != nil {
		return m.CurrentForMeetingsFunc(ctx, ids)
	}
	return map[uint]*meeting.StatusEntry{}, nil
}

func (m *mockStatusRepository) DeleteByMeeting(ctx context.Context, meetingID uint) error {
	if m.DeleteByMeetingFunc != nil {
		return m.DeleteByMeetingFunc(ctx, meetingID)
	}
	return nil
}

type mockAttendeeRepository struct {
	AddFunc             func(ctx context.Context, meetingID, userID uint) error
	RemoveFunc          func(ctx context.Context, meetingID, userID uint) error
	ReplaceFunc         func(ctx context.Context, meetingID uint, userIDs []uint) error
	ListFunc            func(ctx context.Context, meetingID uint) ([]uint, error)
	ListForMeetingsFunc func(ctx context.Context, ids []uint) (map[uint][]uint, error)
	DeleteByMeetingFunc func(ctx context.Context, meetingID uint) error
}

func (m *mockAttendeeRepository) Add(ctx context.Context, meetingID, userID uint) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, meetingID, userID)
	}
	return nil
}

func (m *mockAttendeeRepository) Remove(ctx context.Context, meetingID, userID uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, meetingID, userID)
	}
	return nil
}

func (m *mockAttendeeRepository) Replace(ctx context.Context, meetingID uint, userIDs []uint) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, meetingID, userIDs)
	}
	return nil
}

func (m *mockAttendeeRepository) List(ctx context.Context, meetingID uint) ([]uint, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, meetingID)
	}
	return nil, nil
}

func (m *mockAttendeeRepository) ListForMeetings(ctx context.Context, ids []uint) (map[uint][]uint, error) {
	if m.ListForMeetingsFunc != nil {
		return m.ListForMeetingsFunc(ctx, ids)
	}
	return map[uint][]uint{}, nil
}

func (m *mockAttendeeRepository) DeleteByMeeting(ctx context.Context, meetingID uint) error {
	if m.DeleteByMeetingFunc != nil {
		return m.DeleteByMeetingFunc(ctx, meetingID)
	}
	return nil
}

type mockRoomRepository struct {
	rooms map[uint]*room.Room
}

func newMockRoomRepository(ids ...uint) *mockRoomRepository {
	repo := &mockRoomRepository{rooms: map[uint]*room.Room{}}
	for _, id := range ids {
		r, _ := room.NewRoom("Room", 8, room.SeatingBoardroom, true, "")
		_ = r.SetID(id)
		repo.rooms[id] = r
	}
	return repo
}

func (m *mockRoomRepository) Create(ctx context.Context, r *room.Room) error { return nil }
func (m *mockRoomRepository) Update(ctx context.Context, r *room.Room) error { return nil }
func (m *mockRoomRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockRoomRepository) GetByID(ctx context.Context, id uint) (*room.Room, error) {
	return m.rooms[id], nil
}

func (m *mockRoomRepository) GetByName(ctx context.Context, name string) (*room.Room, error) {
	return nil, nil
}

func (m *mockRoomRepository) List(ctx context.Context) ([]*room.Room, error) {
	return nil, nil
}

type mockDirectory struct {
	users map[uint]*directory.User
}

func newMockDirectory(users ...*directory.User) *mockDirectory {
	d := &mockDirectory{users: map[uint]*directory.User{}}
	for _, u := range users {
		d.users[u.ID] = u
	}
	return d
}

func (m *mockDirectory) GetByID(ctx context.Context, id uint) (*directory.User, error) {
	return m.users[id], nil
}

func (m *mockDirectory) FindByIDs(ctx context.Context, ids []uint) ([]*directory.User, error) {
	var out []*directory.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// inlineTransactor runs fn directly and counts calls.
type inlineTransactor struct {
	calls int
}

func (t *inlineTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type mockLocker struct {
	locked   []uint
	released int
	err      error
}

func (l *mockLocker) Lock(ctx context.Context, roomID uint) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.locked = append(l.locked, roomID)
	return func() { l.released++ }, nil
}

type mockNotifier struct {
	decisions []email.MeetingDecisionMail
	assigned  map[string]email.TicketAssignedMail
	err       error
}

func (n *mockNotifier) SendMeetingDecision(to string, mail email.MeetingDecisionMail) error {
	n.decisions = append(n.decisions, mail)
	return n.err
}

func (n *mockNotifier) SendTicketAssigned(to string, mail email.TicketAssignedMail) error {
	if n.assigned == nil {
		n.assigned = map[string]email.TicketAssignedMail{}
	}
	n.assigned[to] = mail
	return n.err
}

func newTestLogger() logger.Interface {
	return logger.NewNopLogger()
}
