package dto

import (
	"time"

	"github.com/opsportal/opsportal/internal/domain/sop"
	"github.com/opsportal/opsportal/internal/shared/mapper"
)

type LineageEntryDTO struct {
	ID        uint   `json:"id"`
	SopID     uint   `json:"sop_id"`
	Title     string `json:"title"`
	FileURL   string `json:"file_url"`
	Version   string `json:"version"`
	Timestamp int64  `json:"timestamp"`
}

type SopDTO struct {
	ID         uint              `json:"id"`
	Title      string            `json:"title"`
	Version    string            `json:"version"`
	FileURL    string            `json:"file_url"`
	WingID     *uint             `json:"wing_id"`
	SubwID     *uint             `json:"subw_id"`
	Visibility []uint            `json:"visibility"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Lineage    []LineageEntryDTO `json:"lineage,omitempty"`
}

func ToLineageEntryDTO(e *sop.LineageEntry) LineageEntryDTO {
	return LineageEntryDTO{
		ID:        e.ID(),
		SopID:     e.SopID(),
		Title:     e.Title(),
		FileURL:   e.FileURL(),
		Version:   e.Version().String(),
		Timestamp: e.Timestamp(),
	}
}

// ToLineageDTOs renders entries newest first.
func ToLineageDTOs(entries []*sop.LineageEntry) []LineageEntryDTO {
	return mapper.MapSlice(sop.NewestFirst(entries), ToLineageEntryDTO)
}

func ToSopDTO(s *sop.Sop, lineage []*sop.LineageEntry) *SopDTO {
	if s == nil {
		return nil
	}
	d := &SopDTO{
		ID:         s.ID(),
		Title:      s.Title(),
		Version:    s.Version().String(),
		FileURL:    s.FileURL(),
		WingID:     s.WingID(),
		SubwID:     s.SubwID(),
		Visibility: s.Visibility(),
		CreatedAt:  s.CreatedAt(),
		UpdatedAt:  s.UpdatedAt(),
	}
	if lineage != nil {
		d.Lineage = ToLineageDTOs(lineage)
	}
	return d
}
