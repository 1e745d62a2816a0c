package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

func newUpdateUseCase(target *meeting.Meeting, others []*meeting.Meeting, attendees *mockAttendeeRepository, locker *mockLocker) *UpdateMeetingUseCase {
	meetings := &mockMeetingRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*meeting.Meeting, error) {
			if id == target.ID() {
				return target, nil
			}
			return nil, nil
		},
		FindOverlappingFunc: func(_ context.Context, roomID uint, iv meeting.Interval) ([]*meeting.Meeting, error) {
			// the stored row of the meeting being edited always comes back from the query
			out := []*meeting.Meeting{existingMeeting(target.ID(), roomID, target.UserID(), 10, 0, 11, 0)}
			for _, m := range others {
				if m.RoomID() == roomID && m.Interval().Overlaps(iv) {
					out = append(out, m)
				}
			}
			return out, nil
		},
	}
	users := newMockDirectory(&directory.User{ID: 5}, &directory.User{ID: 7})
	return NewUpdateMeetingUseCase(meetings, &mockStatusRepository{}, attendees, newMockRoomRepository(1, 2),
		users, &inlineTransactor{}, locker, newTestLogger())
}

func ptr[T any](v T) *T { return &v }

func TestUpdateMeeting_ExtendOwnSlotIsNotAConflict(t *testing.T) {
	target := existingMeeting(4, 1, 3, 10, 0, 11, 0)
	locker := &mockLocker{}
	uc := newUpdateUseCase(target, nil, &mockAttendeeRepository{}, locker)

	got, err := uc.Execute(context.Background(), UpdateMeetingCommand{
		MeetingID: 4, ActorID: 3, ActorRole: authorization.RoleStaff,
		EndTime: ptr(rfc(11, 30)),
	})
	require.NoError(t, err)
	assert.Equal(t, at(11, 30), got.EndTime)
	assert.Equal(t, []uint{1}, locker.locked)
}

func TestUpdateMeeting_MoveIntoBookedSlot(t *testing.T) {
	target := existingMeeting(4, 1, 3, 10, 0, 11, 0)
	other := existingMeeting(8, 2, 6, 10, 30, 12, 0)
	uc := newUpdateUseCase(target, []*meeting.Meeting{other}, &mockAttendeeRepository{}, &mockLocker{})

	_, err := uc.Execute(context.Background(), UpdateMeetingCommand{
		MeetingID: 4, ActorID: 3, ActorRole: authorization.RoleStaff,
		RoomID: ptr(uint(2)),
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestUpdateMeeting_TitleOnlySkipsLock(t *testing.T) {
	target := existingMeeting(4, 1, 3, 10, 0, 11, 0)
	locker := &mockLocker{}
	uc := newUpdateUseCase(target, nil, &mockAttendeeRepository{
		ListFunc: func(context.Context, uint) ([]uint, error) { return []uint{7}, nil },
	}, locker)

	got, err := uc.Execute(context.Background(), UpdateMeetingCommand{
		MeetingID: 4, ActorID: 3, ActorRole: authorization.RoleStaff,
		Title: ptr("Retro"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Retro", got.Title)
	assert.Equal(t, []uint{7}, got.Attendees)
	assert.Empty(t, locker.locked)
}

func TestUpdateMeeting_Attendees(t *testing.T) {
	target := existingMeeting(4, 1, 3, 10, 0, 11, 0)
	var replaced []uint
	calls := 0
	attendees := &mockAttendeeRepository{
		ReplaceFunc: func(_ context.Context, _ uint, ids []uint) error {
			calls++
			replaced = ids
			return nil
		},
	}
	uc := newUpdateUseCase(target, nil, attendees, &mockLocker{})

	got, err := uc.Execute(context.Background(), UpdateMeetingCommand{
		MeetingID: 4, ActorID: 3, ActorRole: authorization.RoleStaff,
		Attendees: utils.SomeIDs(7, 5, 7),
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{7, 5}, replaced)
	assert.Equal(t, []uint{7, 5}, got.Attendees)

	// an explicit empty list clears the set
	_, err = uc.Execute(context.Background(), UpdateMeetingCommand{
		MeetingID: 4, ActorID: 3, ActorRole: authorization.RoleStaff,
		Attendees: utils.IDList{Present: true, IDs: []uint{}},
	})
	require.NoError(t, err)
	assert.Empty(t, replaced)

	// omitted leaves the set alone
	_, err = uc.Execute(context.Background(), UpdateMeetingCommand{
		MeetingID: 4, ActorID: 3, ActorRole: authorization.RoleStaff,
		Title: ptr("Retro"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestUpdateMeeting_Authorization(t *testing.T) {
	target := existingMeeting(4, 1, 3, 10, 0, 11, 0)
	uc := newUpdateUseCase(target, nil, &mockAttendeeRepository{}, &mockLocker{})

	_, err := uc.Execute(context.Background(), UpdateMeetingCommand{
		MeetingID: 4, ActorID: 8, ActorRole: authorization.RoleApprover, Title: ptr("Mine now"),
	})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), UpdateMeetingCommand{
		MeetingID: 4, ActorID: 8, ActorRole: authorization.RoleAdmin, Title: ptr("Admin edit"),
	})
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), UpdateMeetingCommand{
		MeetingID: 99, ActorID: 3, ActorRole: authorization.RoleStaff, Title: ptr("x"),
	})
	assert.True(t, errors.IsNotFoundError(err))
}
