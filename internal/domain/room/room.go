package room

import (
	"fmt"
	"strings"
	"time"
)

type Seating string

const (
	SeatingBoardroom Seating = "boardroom"
	SeatingTheatre   Seating = "theatre"
	SeatingClassroom Seating = "classroom"
	SeatingUShape    Seating = "u_shape"
	SeatingOpen      Seating = "open"
)

func (s Seating) IsValid() bool {
	switch s {
	case SeatingBoardroom, SeatingTheatre, SeatingClassroom, SeatingUShape, SeatingOpen:
		return true
	}
	return false
}

// Room is a bookable space. Its id is stable; every other attribute is editable.
type Room struct {
	id              uint
	name            string
	capacity        int
	seating         Seating
	hasPresentation bool
	image           string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRoom(name string, capacity int, seating Seating, hasPresentation bool, image string) (*Room, error) {
	r := &Room{}
	if err := r.apply(name, capacity, seating, hasPresentation, image); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	r.createdAt = now
	r.updatedAt = now
	return r, nil
}

func ReconstructRoom(
	id uint,
	name string,
	capacity int,
	seating Seating,
	hasPresentation bool,
	image string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:              id,
		name:            name,
		capacity:        capacity,
		seating:         seating,
		hasPresentation: hasPresentation,
		image:           image,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Update replaces the editable attributes.
func (r *Room) Update(name string, capacity int, seating Seating, hasPresentation bool, image string) error {
	if err := r.apply(name, capacity, seating, hasPresentation, image); err != nil {
		return err
	}
	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *Room) apply(name string, capacity int, seating Seating, hasPresentation bool, image string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("room name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("room name exceeds maximum length of 100 characters")
	}
	if capacity < 1 {
		return fmt.Errorf("room capacity must be at least 1")
	}
	if seating == "" {
		seating = SeatingOpen
	}
	if !seating.IsValid() {
		return fmt.Errorf("invalid seating arrangement: %s", seating)
	}
	r.name = name
	r.capacity = capacity
	r.seating = seating
	r.hasPresentation = hasPresentation
	r.image = strings.TrimSpace(image)
	return nil
}

func (r *Room) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("room ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("room ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Room) ID() uint {
	return r.id
}

func (r *Room) Name() string {
	return r.name
}

func (r *Room) Capacity() int {
	return r.capacity
}

func (r *Room) Seating() Seating {
	return r.seating
}

func (r *Room) HasPresentation() bool {
	return r.hasPresentation
}

func (r *Room) Image() string {
	return r.image
}

func (r *Room) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Room) UpdatedAt() time.Time {
	return r.updatedAt
}
