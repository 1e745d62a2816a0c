package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/mappers"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/db"
)

// MeetingStatusRepositoryImpl only ever inserts; history rows are immutable.
type MeetingStatusRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MeetingMapper
}

func NewMeetingStatusRepository(gdb *gorm.DB) meeting.StatusRepository {
	return &MeetingStatusRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewMeetingMapper(),
	}
}

func (r *MeetingStatusRepositoryImpl) Append(ctx context.Context, entry *meeting.StatusEntry) error {
	model := r.mapper.StatusToModel(entry)
	model.ID = 0
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append meeting status: %w", err)
	}
	return entry.SetID(model.ID)
}

func (r *MeetingStatusRepositoryImpl) ListByMeeting(ctx context.Context, meetingID uint) ([]*meeting.StatusEntry, error) {
	var list []*models.MeetingStatusModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("meeting_id = ?", meetingID).
		Order("changed_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list meeting statuses: %w", err)
	}

	out := make([]*meeting.StatusEntry, 0, len(list))
	for _, model := range list {
		out = append(out, r.mapper.StatusToEntity(model))
	}
	return out, nil
}

// CurrentForMeetings loads every history row for the given meetings in one query and
// reduces them in memory; histories are short.
func (r *MeetingStatusRepositoryImpl) CurrentForMeetings(ctx context.Context, meetingIDs []uint) (map[uint]*meeting.StatusEntry, error) {
	result := make(map[uint]*meeting.StatusEntry, len(meetingIDs))
	if len(meetingIDs) == 0 {
		return result, nil
	}

	var list []*models.MeetingStatusModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("meeting_id IN ?", meetingIDs).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to load meeting statuses: %w", err)
	}

	byMeeting := make(map[uint][]*meeting.StatusEntry, len(meetingIDs))
	for _, model := range list {
		byMeeting[model.MeetingID] = append(byMeeting[model.MeetingID], r.mapper.StatusToEntity(model))
	}
	for id, entries := range byMeeting {
		result[id] = meeting.CurrentStatus(entries)
	}
	return result, nil
}

func (r *MeetingStatusRepositoryImpl) DeleteByMeeting(ctx context.Context, meetingID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("meeting_id = ?", meetingID).
		Delete(&models.MeetingStatusModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete meeting statuses: %w", err)
	}
	return nil
}
