package sop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestNewSop_MirrorsInitialEntry(t *testing.T) {
	s, entry, err := NewSop("Fire drill", "", "/files/fire-v1.pdf", nil, nil, []uint{2, 3}, t0)
	require.NoError(t, err)

	assert.Equal(t, "1.0", s.Version().String())
	require.NotNil(t, entry)
	assert.Equal(t, "1.0", entry.Version().String())
	assert.Equal(t, "/files/fire-v1.pdf", entry.FileURL())
	assert.Equal(t, t0.Unix(), entry.Timestamp())
	assert.Equal(t, []uint{2, 3}, s.Visibility())
}

func TestNewSop_Validation(t *testing.T) {
	_, _, err := NewSop("", "1.0", "/f.pdf", nil, nil, nil, t0)
	assert.Error(t, err)

	_, _, err = NewSop("Fire drill", "1.0", " ", nil, nil, nil, t0)
	assert.Error(t, err)
}

func TestApplyUpload_LineageProgression(t *testing.T) {
	s, first, err := NewSop("Fire drill", "1.0", "/v1.pdf", nil, nil, nil, t0)
	require.NoError(t, err)
	entries := []*LineageEntry{first}

	upload := func(file, explicit string, at time.Time) *LineageEntry {
		e, err := s.ApplyUpload(file, explicit, Latest(entries), at)
		require.NoError(t, err)
		if e != nil {
			entries = append(entries, e)
		}
		return e
	}

	upload("/v2.pdf", "", t0.Add(time.Hour))
	upload("/v3.pdf", "", t0.Add(2*time.Hour))
	assert.Equal(t, "3.0", s.Version().String())

	upload("/v55.pdf", "5.5", t0.Add(3*time.Hour))
	assert.Equal(t, "5.5", s.Version().String())
	assert.Equal(t, "/v55.pdf", s.FileURL())

	var versions []string
	for _, e := range entries {
		versions = append(versions, e.Version().String())
	}
	assert.Equal(t, []string{"1.0", "2.0", "3.0", "5.5"}, versions)
}

func TestApplyUpload_SameFileOnlyTouches(t *testing.T) {
	s, first, err := NewSop("Fire drill", "1.0", "/v1.pdf", nil, nil, nil, t0)
	require.NoError(t, err)

	later := t0.Add(time.Hour)
	e, err := s.ApplyUpload("/v1.pdf", "", first, later)
	require.NoError(t, err)

	assert.Nil(t, e)
	assert.Equal(t, "1.0", s.Version().String())
	assert.Equal(t, later, s.UpdatedAt())
}

func TestApplyUpload_SameFileWithExplicitVersion(t *testing.T) {
	s, first, _ := NewSop("Fire drill", "1.0", "/v1.pdf", nil, nil, nil, t0)

	e, err := s.ApplyUpload("/v1.pdf", "1.1", first, t0.Add(time.Minute))
	require.NoError(t, err)

	require.NotNil(t, e)
	assert.Equal(t, "1.1", e.Version().String())
}

func TestApplyUpload_NoLineageUsesCachedVersion(t *testing.T) {
	s := ReconstructSop(4, "Legacy", ParseVersion("garbled"), "/old.pdf", nil, nil, nil, t0, t0)

	e, err := s.ApplyUpload("/new.pdf", "", nil, t0.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, "2.0", e.Version().String())
	assert.Equal(t, uint(4), e.SopID())
}

func TestLatestAndNewestFirst(t *testing.T) {
	entries := []*LineageEntry{
		ReconstructLineageEntry(1, 1, "t", "/a", ParseVersion("1.0"), 100, t0),
		ReconstructLineageEntry(2, 1, "t", "/b", ParseVersion("2.0"), 200, t0),
		ReconstructLineageEntry(3, 1, "t", "/c", ParseVersion("3.0"), 200, t0),
	}

	assert.Equal(t, uint(3), Latest(entries).ID())
	assert.Nil(t, Latest(nil))

	sorted := NewestFirst(entries)
	assert.Equal(t, uint(3), sorted[0].ID())
	assert.Equal(t, uint(2), sorted[1].ID())
	assert.Equal(t, uint(1), sorted[2].ID())
	assert.Equal(t, uint(1), entries[0].ID(), "input is not reordered")
}

func TestVisibleTo(t *testing.T) {
	open := ReconstructSop(1, "t", DefaultVersion, "/a", nil, nil, nil, t0, t0)
	scoped := ReconstructSop(2, "t", DefaultVersion, "/a", nil, nil, []uint{4}, t0, t0)

	assert.True(t, open.VisibleTo(9))
	assert.True(t, scoped.VisibleTo(4))
	assert.False(t, scoped.VisibleTo(9))
}
