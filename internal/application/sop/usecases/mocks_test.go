package usecases

import (
	"context"
	"io"

	"github.com/opsportal/opsportal/internal/domain/sop"
	"github.com/opsportal/opsportal/internal/shared/errors"
)

type memSopRepository struct {
	docs   map[uint]*sop.Sop
	nextID uint

	UpdateFunc func(ctx context.Context, s *sop.Sop) error
}

func newMemSopRepository() *memSopRepository {
	return &memSopRepository{docs: map[uint]*sop.Sop{}}
}

func (m *memSopRepository) Create(_ context.Context, s *sop.Sop) error {
	m.nextID++
	m.docs[m.nextID] = s
	return s.SetID(m.nextID)
}

func (m *memSopRepository) Update(ctx context.Context, s *sop.Sop) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	m.docs[s.ID()] = s
	return nil
}

func (m *memSopRepository) Delete(_ context.Context, id uint) error {
	if _, ok := m.docs[id]; !ok {
		return errors.NewNotFoundError("sop not found")
	}
	delete(m.docs, id)
	return nil
}

func (m *memSopRepository) GetByID(_ context.Context, id uint) (*sop.Sop, error) {
	return m.docs[id], nil
}

func (m *memSopRepository) List(_ context.Context, _ sop.ListFilter) ([]*sop.Sop, error) {
	out := make([]*sop.Sop, 0, len(m.docs))
	for id := uint(1); id <= m.nextID; id++ {
		if d, ok := m.docs[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

type memLineageRepository struct {
	entries []*sop.LineageEntry

	AppendFunc func(ctx context.Context, e *sop.LineageEntry) error
}

func (m *memLineageRepository) Append(ctx context.Context, e *sop.LineageEntry) error {
	if m.AppendFunc != nil {
		if err := m.AppendFunc(ctx, e); err != nil {
			return err
		}
	}
	m.entries = append(m.entries, e)
	return e.SetID(uint(len(m.entries)))
}

func (m *memLineageRepository) ListBySop(_ context.Context, sopID uint) ([]*sop.LineageEntry, error) {
	var out []*sop.LineageEntry
	for _, e := range m.entries {
		if e.SopID() == sopID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memLineageRepository) Latest(ctx context.Context, sopID uint) (*sop.LineageEntry, error) {
	entries, _ := m.ListBySop(ctx, sopID)
	return sop.Latest(entries), nil
}

func (m *memLineageRepository) DeleteBySop(_ context.Context, sopID uint) error {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.SopID() != sopID {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

// snapshotTransactor restores both in-memory repositories when fn fails.
type snapshotTransactor struct {
	docs    *memSopRepository
	lineage *memLineageRepository
}

func (t *snapshotTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	saved := make(map[uint]sop.Sop, len(t.docs.docs))
	for id, d := range t.docs.docs {
		saved[id] = *d
	}
	entries := append([]*sop.LineageEntry(nil), t.lineage.entries...)

	if err := fn(ctx); err != nil {
		for id, d := range t.docs.docs {
			if snap, ok := saved[id]; ok {
				*d = snap
			}
		}
		t.lineage.entries = entries
		return err
	}
	return nil
}

type fakeStore struct {
	saved []string
}

func (f *fakeStore) Save(_ context.Context, filename string, r io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.saved = append(f.saved, filename)
	return "/files/sops/" + string(data) + ".pdf", nil
}
