package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/opsportal/opsportal/internal/domain/sop"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/biztime"
)

type SopMapper interface {
	ToModel(s *sop.Sop) (*models.SopModel, error)
	ToEntity(model *models.SopModel) (*sop.Sop, error)
	ToEntities(list []*models.SopModel) ([]*sop.Sop, error)
	LineageToModel(e *sop.LineageEntry) *models.SopFileModel
	LineageToEntity(model *models.SopFileModel) *sop.LineageEntry
}

type SopMapperImpl struct{}

func NewSopMapper() SopMapper {
	return &SopMapperImpl{}
}

func (m *SopMapperImpl) ToModel(s *sop.Sop) (*models.SopModel, error) {
	visibility, err := json.Marshal(s.Visibility())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sop visibility: %w", err)
	}
	return &models.SopModel{
		ID:         s.ID(),
		Title:      s.Title(),
		Version:    s.Version().String(),
		FileURL:    s.FileURL(),
		WingID:     s.WingID(),
		SubwID:     s.SubwID(),
		Visibility: datatypes.JSON(visibility),
		CreatedAt:  biztime.ToMillis(s.CreatedAt()),
		UpdatedAt:  biztime.ToMillis(s.UpdatedAt()),
	}, nil
}

// ToEntity normalises whatever version string is stored, so legacy garbage reads as 1.0.
func (m *SopMapperImpl) ToEntity(model *models.SopModel) (*sop.Sop, error) {
	var visibility []uint
	if len(model.Visibility) > 0 {
		if err := json.Unmarshal(model.Visibility, &visibility); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sop visibility (id=%d): %w", model.ID, err)
		}
	}
	return sop.ReconstructSop(
		model.ID,
		model.Title,
		sop.ParseVersion(model.Version),
		model.FileURL,
		model.WingID,
		model.SubwID,
		visibility,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	), nil
}

func (m *SopMapperImpl) ToEntities(list []*models.SopModel) ([]*sop.Sop, error) {
	out := make([]*sop.Sop, 0, len(list))
	for _, model := range list {
		s, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *SopMapperImpl) LineageToModel(e *sop.LineageEntry) *models.SopFileModel {
	return &models.SopFileModel{
		ID:        e.ID(),
		SopID:     e.SopID(),
		Title:     e.Title(),
		FileURL:   e.FileURL(),
		Version:   e.Version().String(),
		Timestamp: e.Timestamp(),
		CreatedAt: biztime.ToMillis(e.CreatedAt()),
	}
}

func (m *SopMapperImpl) LineageToEntity(model *models.SopFileModel) *sop.LineageEntry {
	return sop.ReconstructLineageEntry(
		model.ID,
		model.SopID,
		model.Title,
		model.FileURL,
		sop.ParseVersion(model.Version),
		model.Timestamp,
		biztime.FromMillis(model.CreatedAt),
	)
}
