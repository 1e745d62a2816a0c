// Package directory is the read-only view of portal users used to validate
// attendee and assignee ids and to address notifications.
package directory

import (
	"context"

	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/utils/setutil"
)

type User struct {
	ID     uint
	Name   string
	Email  string
	Role   authorization.UserRole
	WingID *uint
}

type Repository interface {
	// GetByID returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id uint) (*User, error)
	// FindByIDs returns the users that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uint) ([]*User, error)
}

// MissingIDs returns the ids that do not resolve to a user, in input order.
func MissingIDs(ctx context.Context, repo Repository, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := setutil.NewUintSetWithCap(len(found))
	for _, u := range found {
		known.Add(u.ID)
	}
	return known.Missing(ids), nil
}
