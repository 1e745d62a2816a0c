// Package sop models standard operating procedure documents and their
// append-only version lineage. The document row caches the version and file of
// its latest lineage entry.
package sop

import (
	"fmt"
	"strings"
	"time"
)

type Sop struct {
	id         uint
	title      string
	version    Version
	fileURL    string
	wingID     *uint
	subwID     *uint
	visibility []uint
	createdAt  time.Time
	updatedAt  time.Time
}

// NewSop creates a document and the single lineage entry that mirrors it.
// An empty version means 1.0.
func NewSop(title, version, fileURL string, wingID, subwID *uint, visibility []uint, now time.Time) (*Sop, *LineageEntry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil, fmt.Errorf("document title is required")
	}
	if len(title) > 255 {
		return nil, nil, fmt.Errorf("document title exceeds maximum length of 255 characters")
	}
	if strings.TrimSpace(fileURL) == "" {
		return nil, nil, fmt.Errorf("document file is required")
	}

	v := DefaultVersion
	if strings.TrimSpace(version) != "" {
		v = ParseVersion(version)
	}

	now = now.UTC()
	s := &Sop{
		title:      title,
		version:    v,
		fileURL:    fileURL,
		wingID:     wingID,
		subwID:     subwID,
		visibility: copyIDs(visibility),
		createdAt:  now,
		updatedAt:  now,
	}
	return s, s.entryFor(now), nil
}

func ReconstructSop(
	id uint,
	title string,
	version Version,
	fileURL string,
	wingID, subwID *uint,
	visibility []uint,
	createdAt, updatedAt time.Time,
) *Sop {
	return &Sop{
		id:         id,
		title:      title,
		version:    version,
		fileURL:    fileURL,
		wingID:     wingID,
		subwID:     subwID,
		visibility: copyIDs(visibility),
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Sop) entryFor(now time.Time) *LineageEntry {
	return &LineageEntry{
		sopID:     s.id,
		title:     s.title,
		fileURL:   s.fileURL,
		version:   s.version,
		timestamp: now.Unix(),
		createdAt: now,
	}
}

// ApplyUpload points the document at a newly uploaded file and returns the lineage
// entry to append. Re-submitting the current file without an explicit version only
// advances updated_at and returns nil. Without an explicit version the major of
// latest (or of the cached version when there is no lineage yet) is bumped.
func (s *Sop) ApplyUpload(fileURL, explicitVersion string, latest *LineageEntry, now time.Time) (*LineageEntry, error) {
	if strings.TrimSpace(fileURL) == "" {
		return nil, fmt.Errorf("document file is required")
	}
	now = now.UTC()

	explicitVersion = strings.TrimSpace(explicitVersion)
	if explicitVersion == "" && fileURL == s.fileURL {
		s.updatedAt = now
		return nil, nil
	}

	var next Version
	switch {
	case explicitVersion != "":
		next = ParseVersion(explicitVersion)
	case latest != nil:
		next = latest.version.Next()
	default:
		next = s.version.Next()
	}

	s.version = next
	s.fileURL = fileURL
	s.updatedAt = now
	return s.entryFor(now), nil
}

func (s *Sop) Retitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("document title is required")
	}
	s.title = title
	s.updatedAt = time.Now().UTC()
	return nil
}

// VisibleTo reports whether members of wingID may see the document. An empty
// visibility list means everyone.
func (s *Sop) VisibleTo(wingID uint) bool {
	if len(s.visibility) == 0 {
		return true
	}
	for _, id := range s.visibility {
		if id == wingID {
			return true
		}
	}
	return false
}

func (s *Sop) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("document ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Sop) ID() uint {
	return s.id
}

func (s *Sop) Title() string {
	return s.title
}

func (s *Sop) Version() Version {
	return s.version
}

func (s *Sop) FileURL() string {
	return s.fileURL
}

func (s *Sop) WingID() *uint {
	return s.wingID
}

func (s *Sop) SubwID() *uint {
	return s.subwID
}

func (s *Sop) Visibility() []uint {
	return copyIDs(s.visibility)
}

func (s *Sop) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Sop) UpdatedAt() time.Time {
	return s.updatedAt
}

func copyIDs(ids []uint) []uint {
	out := make([]uint, len(ids))
	copy(out, ids)
	return out
}
