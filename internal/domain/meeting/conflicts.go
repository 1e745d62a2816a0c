package meeting

// BlockingConflicts narrows raw overlap results to the meetings that actually block
// candidate: the candidate itself is skipped, as is any meeting whose current status
// is declined. current maps meeting id to its current history entry.
func BlockingConflicts(candidate *Meeting, overlapping []*Meeting, current map[uint]*StatusEntry) []*Meeting {
	blocking := make([]*Meeting, 0, len(overlapping))
	for _, other := range overlapping {
		if !candidate.ConflictsWith(other) {
			continue
		}
		if st, ok := current[other.ID()]; ok && st.Status() == StatusDeclined {
			continue
		}
		blocking = append(blocking, other)
	}
	return blocking
}

// IDs collects meeting ids in order.
func IDs(meetings []*Meeting) []uint {
	ids := make([]uint, 0, len(meetings))
	for _, m := range meetings {
		ids = append(ids, m.ID())
	}
	return ids
}
