package db

import (
	"gorm.io/gorm"
)

// NotDeleted filters out soft-deleted rows.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// NotTrashed hides rows moved to the trash. Independent of NotDeleted.
func NotTrashed() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("trashed_at IS NULL")
	}
}

// OnlyTrashed selects trashed rows.
func OnlyTrashed() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("trashed_at IS NOT NULL")
	}
}
