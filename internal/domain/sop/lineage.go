package sop

import (
	"fmt"
	"sort"
	"time"
)

// LineageEntry is one immutable row in a document's version history.
// Timestamp has seconds resolution.
type LineageEntry struct {
	id        uint
	sopID     uint
	title     string
	fileURL   string
	version   Version
	timestamp int64
	createdAt time.Time
}

func ReconstructLineageEntry(
	id, sopID uint,
	title, fileURL string,
	version Version,
	timestamp int64,
	createdAt time.Time,
) *LineageEntry {
	return &LineageEntry{
		id:        id,
		sopID:     sopID,
		title:     title,
		fileURL:   fileURL,
		version:   version,
		timestamp: timestamp,
		createdAt: createdAt,
	}
}

func (e *LineageEntry) ID() uint {
	return e.id
}

func (e *LineageEntry) SopID() uint {
	return e.sopID
}

func (e *LineageEntry) Title() string {
	return e.title
}

func (e *LineageEntry) FileURL() string {
	return e.fileURL
}

func (e *LineageEntry) Version() Version {
	return e.version
}

func (e *LineageEntry) Timestamp() int64 {
	return e.timestamp
}

func (e *LineageEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *LineageEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("lineage entry ID is already set")
	}
	e.id = id
	return nil
}

// SetSopID binds an entry built before its document was persisted.
func (e *LineageEntry) SetSopID(sopID uint) {
	e.sopID = sopID
}

func (e *LineageEntry) newerThan(other *LineageEntry) bool {
	if e.timestamp != other.timestamp {
		return e.timestamp > other.timestamp
	}
	return e.id > other.id
}

// Latest returns the entry with the greatest timestamp, ties broken by id.
func Latest(entries []*LineageEntry) *LineageEntry {
	var latest *LineageEntry
	for _, e := range entries {
		if latest == nil || e.newerThan(latest) {
			latest = e
		}
	}
	return latest
}

// NewestFirst returns a sorted copy, latest entry first.
func NewestFirst(entries []*LineageEntry) []*LineageEntry {
	out := make([]*LineageEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].newerThan(out[j])
	})
	return out
}
