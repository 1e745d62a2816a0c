package models

import "github.com/opsportal/opsportal/internal/shared/constants"

// UserModel is the read side of the user directory. Accounts are provisioned by
// the identity service; this service never writes the table outside seeding and tests.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Role      string `gorm:"size:20;not null;default:staff"`
	WingID    *uint  `gorm:"index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
