package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/db"
)

type MeetingAttendeeRepositoryImpl struct {
	db *gorm.DB
}

func NewMeetingAttendeeRepository(gdb *gorm.DB) meeting.AttendeeRepository {
	return &MeetingAttendeeRepositoryImpl{db: gdb}
}

// Add upserts the pair: ON DUPLICATE KEY on MySQL, ON CONFLICT on SQLite.
func (r *MeetingAttendeeRepositoryImpl) Add(ctx context.Context, meetingID, userID uint) error {
	return r.add(db.GetTxFromContext(ctx, r.db), meetingID, userID, time.Now().UnixMilli())
}

func (r *MeetingAttendeeRepositoryImpl) add(tx *gorm.DB, meetingID, userID uint, now int64) error {
	model := &models.MeetingAttendeeModel{
		MeetingID:   meetingID,
		AttendantID: userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "attendant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to add attendee: %w", err)
	}
	return nil
}

func (r *MeetingAttendeeRepositoryImpl) Remove(ctx context.Context, meetingID, userID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("meeting_id = ? AND attendant_id = ?", meetingID, userID).
		Delete(&models.MeetingAttendeeModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove attendee: %w", err)
	}
	return nil
}

// Replace runs in its own transaction, or a savepoint when the caller already opened one.
func (r *MeetingAttendeeRepositoryImpl) Replace(ctx context.Context, meetingID uint, userIDs []uint) error {
	now := time.Now().UnixMilli()
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).Delete(&models.MeetingAttendeeModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear attendees: %w", err)
		}
		for _, userID := range userIDs {
			if err := r.add(tx, meetingID, userID, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MeetingAttendeeRepositoryImpl) List(ctx context.Context, meetingID uint) ([]uint, error) {
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.MeetingAttendeeModel{}).
		Where("meeting_id = ?", meetingID).
		Order("attendant_id ASC").
		Pluck("attendant_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	return ids, nil
}

func (r *MeetingAttendeeRepositoryImpl) ListForMeetings(ctx context.Context, meetingIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(meetingIDs))
	if len(meetingIDs) == 0 {
		return result, nil
	}

	var rows []*models.MeetingAttendeeModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("meeting_id IN ?", meetingIDs).
		Order("meeting_id ASC, attendant_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attendees for meetings: %w", err)
	}
	for _, row := range rows {
		result[row.MeetingID] = append(result[row.MeetingID], row.AttendantID)
	}
	return result, nil
}

func (r *MeetingAttendeeRepositoryImpl) DeleteByMeeting(ctx context.Context, meetingID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("meeting_id = ?", meetingID).
		Delete(&models.MeetingAttendeeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete attendees: %w", err)
	}
	return nil
}
