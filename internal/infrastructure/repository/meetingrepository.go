package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsportal/opsportal/internal/domain/meeting"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/mappers"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/biztime"
	"github.com/opsportal/opsportal/internal/shared/db"
	apperrors "github.com/opsportal/opsportal/internal/shared/errors"
)

type MeetingRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MeetingMapper
}

func NewMeetingRepository(gdb *gorm.DB) meeting.Repository {
	return &MeetingRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewMeetingMapper(),
	}
}

func (r *MeetingRepositoryImpl) Create(ctx context.Context, m *meeting.Meeting) error {
	model := r.mapper.ToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return m.SetID(model.ID)
}

func (r *MeetingRepositoryImpl) Update(ctx context.Context, m *meeting.Meeting) error {
	model := r.mapper.ToModel(m)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.MeetingModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"room_id":    model.RoomID,
			"start_time": model.StartTime,
			"end_time":   model.EndTime,
			"wing_id":    model.WingID,
			"subw_id":    model.SubwID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("meeting not found")
	}
	return nil
}

func (r *MeetingRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.MeetingModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("meeting not found")
	}
	return nil
}

func (r *MeetingRepositoryImpl) GetByID(ctx context.Context, id uint) (*meeting.Meeting, error) {
	var model models.MeetingModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meeting by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *MeetingRepositoryImpl) List(ctx context.Context, filter meeting.ListFilter) ([]*meeting.Meeting, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.MeetingModel{})
	if filter.RoomID != nil {
		query = query.Where("room_id = ?", *filter.RoomID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.From > 0 {
		query = query.Where("end_time > ?", filter.From)
	}
	if filter.To > 0 {
		query = query.Where("start_time < ?", filter.To)
	}

	var list []*models.MeetingModel
	if err := query.Order("start_time ASC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return r.mapper.ToEntities(list), nil
}

// FindOverlapping selects [s,e) rows with s < end and e > start, which is the
// negation of (e <= start OR s >= end).
func (r *MeetingRepositoryImpl) FindOverlapping(ctx context.Context, roomID uint, interval meeting.Interval) ([]*meeting.Meeting, error) {
	var list []*models.MeetingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("room_id = ? AND start_time < ? AND end_time > ?",
			roomID, biztime.ToMillis(interval.End), biztime.ToMillis(interval.Start)).
		Order("start_time ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping meetings: %w", err)
	}
	return r.mapper.ToEntities(list), nil
}

func (r *MeetingRepositoryImpl) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.MeetingModel{}).
		Where("room_id = ?", roomID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count meetings for room: %w", err)
	}
	return count, nil
}
