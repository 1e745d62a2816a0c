// Package setutil provides an insertion-ordered id set used wherever an id list
// must be deduplicated without losing the caller's ordering.
package setutil

// UintSet remembers each id once, in first-seen order.
type UintSet struct {
	items map[uint]struct{}
	order []uint
}

func NewUintSetWithCap(capacity int) *UintSet {
	return &UintSet{
		items: make(map[uint]struct{}, capacity),
		order: make([]uint, 0, capacity),
	}
}

// FromSlice builds a set from ids, dropping repeats.
func FromSlice(ids []uint) *UintSet {
	s := NewUintSetWithCap(len(ids))
	s.AddAll(ids)
	return s
}

// Positive keeps the non-zero ids of raw once each, in first-seen order.
// The result is never nil.
func Positive(raw []uint) []uint {
	s := NewUintSetWithCap(len(raw))
	for _, id := range raw {
		if id > 0 {
			s.Add(id)
		}
	}
	return s.ToSlice()
}

// Add inserts id and reports whether it was new.
func (s *UintSet) Add(id uint) bool {
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s *UintSet) AddAll(ids []uint) {
	for _, id := range ids {
		s.Add(id)
	}
}

func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// ToSlice returns the ids in insertion order. The result is a copy.
func (s *UintSet) ToSlice() []uint {
	out := make([]uint, len(s.order))
	copy(out, s.order)
	return out
}

func (s *UintSet) Len() int {
	return len(s.order)
}

// Missing returns the ids of want that are not in the set, in want's order.
func (s *UintSet) Missing(want []uint) []uint {
	var out []uint
	for _, id := range want {
		if !s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
