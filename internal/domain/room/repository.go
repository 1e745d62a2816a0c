package room

import "context"

type Repository interface {
	Create(ctx context.Context, r *Room) error
	Update(ctx context.Context, r *Room) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil, nil when the room does not exist.
	GetByID(ctx context.Context, id uint) (*Room, error)
	GetByName(ctx context.Context, name string) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
}
