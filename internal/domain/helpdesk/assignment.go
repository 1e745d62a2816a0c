package helpdesk

// SameAssignees reports whether two ordered assignee lists are identical. Order
// matters because the first entry is the primary assignee.
func SameAssignees(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
