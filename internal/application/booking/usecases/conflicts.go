package usecases

import (
	"context"
	"strconv"
	"strings"

	"github.com/opsportal/opsportal/internal/application/booking/dto"
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/shared/errors"
)

// slotChecker narrows the raw overlap query to the bookings that actually block a window.
type slotChecker struct {
	meetingRepo meeting.Repository
	statusRepo  meeting.StatusRepository
}

func (c slotChecker) blocking(ctx context.Context, candidate *meeting.Meeting) ([]*meeting.Meeting, map[uint]*meeting.StatusEntry, error) {
	overlapping, err := c.meetingRepo.FindOverlapping(ctx, candidate.RoomID(), candidate.Interval())
	if err != nil {
		return nil, nil, err
	}
	if len(overlapping) == 0 {
		return nil, nil, nil
	}
	current, err := c.statusRepo.CurrentForMeetings(ctx, meeting.IDs(overlapping))
	if err != nil {
		return nil, nil, err
	}
	return meeting.BlockingConflicts(candidate, overlapping, current), current, nil
}

func conflictError(blocking []*meeting.Meeting, current map[uint]*meeting.StatusEntry) error {
	return errors.NewConflictErrorWithPayload(
		"room is already booked for the requested time",
		dto.ToConflictDTOs(blocking, current),
	)
}

func requireUsers(ctx context.Context, users directory.Repository, ids []uint) error {
	missing, err := directory.MissingIDs(ctx, users, ids)
	if err != nil {
		return errors.NewInternalError("failed to look up users")
	}
	if len(missing) == 0 {
		return nil
	}
	parts := make([]string, 0, len(missing))
	for _, id := range missing {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return errors.NewValidationError("unknown user ids", strings.Join(parts, ","))
}

func parseInterval(start, end string) (meeting.Interval, error) {
	s, err := parseRFC3339(start, "start_time")
	if err != nil {
		return meeting.Interval{}, err
	}
	e, err := parseRFC3339(end, "end_time")
	if err != nil {
		return meeting.Interval{}, err
	}
	iv, err := meeting.NewInterval(s, e)
	if err != nil {
		return meeting.Interval{}, errors.NewValidationError(err.Error())
	}
	return iv, nil
}
