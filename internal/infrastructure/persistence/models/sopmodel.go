package models

import (
	"gorm.io/datatypes"

	"github.com/opsportal/opsportal/internal/shared/constants"
)

// SopModel.Version and FileURL mirror the latest SopFileModel row for the document.
type SopModel struct {
	ID         uint           `gorm:"primaryKey"`
	Title      string         `gorm:"size:255;not null"`
	Version    string         `gorm:"size:20;not null"`
	FileURL    string         `gorm:"size:1000;not null"`
	WingID     *uint          `gorm:"index"`
	SubwID     *uint
	Visibility datatypes.JSON
	CreatedAt  int64          `gorm:"not null"`
	UpdatedAt  int64          `gorm:"not null"`
}

func (SopModel) TableName() string {
	return constants.TableSops
}

// SopFileModel is a lineage row. Timestamp is epoch seconds.
type SopFileModel struct {
	ID        uint   `gorm:"primaryKey"`
	SopID     uint   `gorm:"not null;index:idx_sop_files_latest,priority:1"`
	Title     string `gorm:"size:255;not null"`
	FileURL   string `gorm:"size:1000;not null"`
	Version   string `gorm:"size:20;not null"`
	Timestamp int64  `gorm:"not null;index:idx_sop_files_latest,priority:2"`
	CreatedAt int64  `gorm:"not null"`
}

func (SopFileModel) TableName() string {
	return constants.TableSopFiles
}
