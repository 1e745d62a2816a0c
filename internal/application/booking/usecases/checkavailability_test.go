package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/shared/errors"
)

func TestCheckAvailability(t *testing.T) {
	booked := existingMeeting(9, 1, 3, 10, 0, 11, 0)
	meetings := &mockMeetingRepository{
		FindOverlappingFunc: func(_ context.Context, roomID uint, iv meeting.Interval) ([]*meeting.Meeting, error) {
			if roomID == booked.RoomID() && booked.Interval().Overlaps(iv) {
				return []*meeting.Meeting{booked}, nil
			}
			return nil, nil
		},
	}
	uc := NewCheckAvailabilityUseCase(meetings, &mockStatusRepository{}, newMockRoomRepository(1), newTestLogger())
	ctx := context.Background()

	got, err := uc.Execute(ctx, CheckAvailabilityQuery{RoomID: 1, StartTime: rfc(11, 0), EndTime: rfc(12, 0)})
	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.Empty(t, got.Conflicts)

	got, err = uc.Execute(ctx, CheckAvailabilityQuery{RoomID: 1, StartTime: rfc(10, 30), EndTime: rfc(12, 0)})
	require.NoError(t, err)
	assert.False(t, got.Available)
	require.Len(t, got.Conflicts, 1)
	assert.Equal(t, "pending", got.Conflicts[0].Status)

	got, err = uc.Execute(ctx, CheckAvailabilityQuery{RoomID: 1, StartTime: rfc(10, 30), EndTime: rfc(12, 0), ExcludeMeetingID: 9})
	require.NoError(t, err)
	assert.True(t, got.Available)

	_, err = uc.Execute(ctx, CheckAvailabilityQuery{RoomID: 2, StartTime: rfc(10, 30), EndTime: rfc(12, 0)})
	assert.True(t, errors.IsNotFoundError(err))
}
