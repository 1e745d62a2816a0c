package mappers

import (
	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/biztime"
)

type MeetingMapper interface {
	ToModel(m *meeting.Meeting) *models.MeetingModel
	ToEntity(model *models.MeetingModel) *meeting.Meeting
	ToEntities(list []*models.MeetingModel) []*meeting.Meeting
	StatusToModel(e *meeting.StatusEntry) *models.MeetingStatusModel
	StatusToEntity(model *models.MeetingStatusModel) *meeting.StatusEntry
}

type MeetingMapperImpl struct{}

func NewMeetingMapper() MeetingMapper {
	return &MeetingMapperImpl{}
}

func (m *MeetingMapperImpl) ToModel(mt *meeting.Meeting) *models.MeetingModel {
	iv := mt.Interval()
	return &models.MeetingModel{
		ID:        mt.ID(),
		Title:     mt.Title(),
		RoomID:    mt.RoomID(),
		UserID:    mt.UserID(),
		StartTime: biztime.ToMillis(iv.Start),
		EndTime:   biztime.ToMillis(iv.End),
		WingID:    mt.WingID(),
		SubwID:    mt.SubwID(),
		CreatedAt: biztime.ToMillis(mt.CreatedAt()),
		UpdatedAt: biztime.ToMillis(mt.UpdatedAt()),
	}
}

// ToEntity trusts stored windows; they were validated when written.
func (m *MeetingMapperImpl) ToEntity(model *models.MeetingModel) *meeting.Meeting {
	return meeting.ReconstructMeeting(
		model.ID,
		model.Title,
		model.RoomID,
		model.UserID,
		meeting.Interval{
			Start: biztime.FromMillis(model.StartTime),
			End:   biztime.FromMillis(model.EndTime),
		},
		model.WingID,
		model.SubwID,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *MeetingMapperImpl) ToEntities(list []*models.MeetingModel) []*meeting.Meeting {
	out := make([]*meeting.Meeting, 0, len(list))
	for _, model := range list {
		out = append(out, m.ToEntity(model))
	}
	return out
}

func (m *MeetingMapperImpl) StatusToModel(e *meeting.StatusEntry) *models.MeetingStatusModel {
	return &models.MeetingStatusModel{
		ID:            e.ID(),
		MeetingID:     e.MeetingID(),
		Status:        e.Status().String(),
		ApprovedBy:    e.ApprovedBy(),
		DeclinedBy:    e.DeclinedBy(),
		DeclineReason: e.DeclineReason(),
		ChangedAt:     biztime.ToMillis(e.ChangedAt()),
	}
}

func (m *MeetingMapperImpl) StatusToEntity(model *models.MeetingStatusModel) *meeting.StatusEntry {
	return meeting.ReconstructStatusEntry(
		model.ID,
		model.MeetingID,
		meeting.Status(model.Status),
		model.ApprovedBy,
		model.DeclinedBy,
		model.DeclineReason,
		biztime.FromMillis(model.ChangedAt),
	)
}
