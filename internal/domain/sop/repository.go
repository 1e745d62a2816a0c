package sop

import "context"

type ListFilter struct {
	WingID *uint
	Search string
}

type Repository interface {
	Create(ctx context.Context, s *Sop) error
	// Update writes the cached pointer fields (title, version, file_url, updated_at).
	Update(ctx context.Context, s *Sop) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil, nil when the document does not exist.
	GetByID(ctx context.Context, id uint) (*Sop, error)
	List(ctx context.Context, filter ListFilter) ([]*Sop, error)
}

type LineageRepository interface {
	Append(ctx context.Context, entry *LineageEntry) error
	// ListBySop returns entries in creation order (timestamp, then id).
	ListBySop(ctx context.Context, sopID uint) ([]*LineageEntry, error)
	// Latest returns nil, nil for a document without lineage.
	Latest(ctx context.Context, sopID uint) (*LineageEntry, error)
	DeleteBySop(ctx context.Context, sopID uint) error
}
