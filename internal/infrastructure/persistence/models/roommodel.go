package models

import "github.com/opsportal/opsportal/internal/shared/constants"

type RoomModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:100;not null;uniqueIndex"`
	Capacity        int    `gorm:"not null"`
	Seating         string `gorm:"size:20;not null"`
	HasPresentation bool   `gorm:"not null;default:false"`
	Image           string `gorm:"size:500"`
	CreatedAt       int64  `gorm:"not null"`
	UpdatedAt       int64  `gorm:"not null"`
}

func (RoomModel) TableName() string {
	return constants.TableRooms
}
