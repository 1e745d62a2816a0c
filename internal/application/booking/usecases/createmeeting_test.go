package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/infrastructure/cache"
	"github.com/opsportal/opsportal/internal/shared/errors"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
}

func rfc(h, m int) string {
	return at(h, m).Format(time.RFC3339)
}

func existingMeeting(id, roomID, ownerID uint, fh, fm, th, tm int) *meeting.Meeting {
	iv := meeting.Interval{Start: at(fh, fm), End: at(th, tm)}
	return meeting.ReconstructMeeting(id, "Standup", roomID, ownerID, iv, nil, nil, at(8, 0), at(8, 0))
}

func declined(meetingID uint) *meeting.StatusEntry {
	reason := "room closed"
	actor := uint(99)
	return meeting.ReconstructStatusEntry(10, meetingID, meeting.StatusDeclined, nil, &actor, &reason, at(8, 0))
}

type createFixture struct {
	meetings  *mockMeetingRepository
	statuses  *mockStatusRepository
	attendees *mockAttendeeRepository
	tx        *inlineTransactor
	locker    *mockLocker
	uc        *CreateMeetingUseCase
}

func newCreateFixture(existing ...*meeting.Meeting) *createFixture {
	f := &createFixture{
		meetings: &mockMeetingRepository{
			FindOverlappingFunc: func(_ context.Context, roomID uint, iv meeting.Interval) ([]*meeting.Meeting, error) {
				var out []*meeting.Meeting
				for _, m := range existing {
					if m.RoomID() == roomID && m.Interval().Overlaps(iv) {
						out = append(out, m)
					}
				}
				return out, nil
			},
			CreateFunc: func(_ context.Context, m *meeting.Meeting) error {
				return m.SetID(42)
			},
		},
		statuses:  &mockStatusRepository{},
		attendees: &mockAttendeeRepository{},
		tx:        &inlineTransactor{},
		locker:    &mockLocker{},
	}
	users := newMockDirectory(&directory.User{ID: 5}, &directory.User{ID: 7})
	f.uc = NewCreateMeetingUseCase(f.meetings, f.statuses, f.attendees, newMockRoomRepository(1, 2),
		users, f.tx, f.locker, newTestLogger())
	return f
}

func TestCreateMeeting_SeedsPendingAndAttendees(t *testing.T) {
	f := newCreateFixture()
	var replaced []uint
	f.attendees.ReplaceFunc = func(_ context.Context, meetingID uint, ids []uint) error {
		assert.Equal(t, uint(42), meetingID)
		replaced = ids
		return nil
	}

	got, err := f.uc.Execute(context.Background(), CreateMeetingCommand{
		Title: "Planning", RoomID: 1, UserID: 3,
		StartTime: rfc(10, 0), EndTime: rfc(11, 0),
		Attendees: []uint{5, 7, 5, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), got.ID)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, []uint{5, 7}, got.Attendees)
	assert.Equal(t, []uint{5, 7}, replaced)
	require.Len(t, f.statuses.appended, 1)
	assert.Equal(t, meeting.StatusPending, f.statuses.appended[0].Status())
	assert.Equal(t, []uint{1}, f.locker.locked)
	assert.Equal(t, 1, f.locker.released)
	assert.Equal(t, 1, f.tx.calls)
}

func TestCreateMeeting_Overlap(t *testing.T) {
	tests := []struct {
		name         string
		existing     *meeting.Meeting
		current      map[uint]*meeting.StatusEntry
		wantConflict bool
	}{
		{"back to back is allowed", existingMeeting(9, 1, 3, 9, 0, 10, 0), nil, false},
		{"partial overlap", existingMeeting(9, 1, 3, 9, 30, 10, 30), nil, true},
		{"contained", existingMeeting(9, 1, 3, 10, 15, 10, 45), nil, true},
		{"other room", existingMeeting(9, 2, 3, 10, 0, 11, 0), nil, false},
		{"declined does not block", existingMeeting(9, 1, 3, 10, 0, 11, 0),
			map[uint]*meeting.StatusEntry{9: declined(9)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateFixture(tt.existing)
			if tt.current != nil {
				f.statuses.CurrentForMeetingsFunc = func(context.Context, []uint) (map[uint]*meeting.StatusEntry, error) {
					return tt.current, nil
				}
			}

			got, err := f.uc.Execute(context.Background(), CreateMeetingCommand{
				Title: "Planning", RoomID: 1, UserID: 3,
				StartTime: rfc(10, 0), EndTime: rfc(11, 0),
			})

			if !tt.wantConflict {
				require.NoError(t, err)
				assert.NotNil(t, got)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConflictError(err))
			appErr := errors.GetAppError(err)
			conflicts, ok := appErr.Payload.([]dto.ConflictDTO)
			require.True(t, ok)
			require.Len(t, conflicts, 1)
			assert.Equal(t, uint(9), conflicts[0].ID)
			assert.Empty(t, f.statuses.appended)
		})
	}
}

func TestCreateMeeting_Validation(t *testing.T) {
	tests := []struct {
		name  string
		cmd   CreateMeetingCommand
		check func(error) bool
	}{
		{"end before start", CreateMeetingCommand{Title: "x", RoomID: 1, UserID: 3, StartTime: rfc(11, 0), EndTime: rfc(10, 0)}, errors.IsValidationError},
		{"zero length", CreateMeetingCommand{Title: "x", RoomID: 1, UserID: 3, StartTime: rfc(10, 0), EndTime: rfc(10, 0)}, errors.IsValidationError},
		{"bad time", CreateMeetingCommand{Title: "x", RoomID: 1, UserID: 3, StartTime: "tomorrow", EndTime: rfc(10, 0)}, errors.IsValidationError},
		{"blank title", CreateMeetingCommand{Title: " ", RoomID: 1, UserID: 3, StartTime: rfc(10, 0), EndTime: rfc(11, 0)}, errors.IsValidationError},
		{"unknown room", CreateMeetingCommand{Title: "x", RoomID: 77, UserID: 3, StartTime: rfc(10, 0), EndTime: rfc(11, 0)}, errors.IsNotFoundError},
		{"unknown attendee", CreateMeetingCommand{Title: "x", RoomID: 1, UserID: 3, StartTime: rfc(10, 0), EndTime: rfc(11, 0), Attendees: []uint{5, 404}}, errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateFixture()
			_, err := f.uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestCreateMeeting_LockTimeoutIsConflict(t *testing.T) {
	f := newCreateFixture()
	f.locker.err = cache.ErrRoomLockTimeout

	_, err := f.uc.Execute(context.Background(), CreateMeetingCommand{
		Title: "Planning", RoomID: 1, UserID: 3, StartTime: rfc(10, 0), EndTime: rfc(11, 0),
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Zero(t, f.tx.calls)
}
