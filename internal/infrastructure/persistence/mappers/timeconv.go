package mappers

import (
	"time"

	"github.com/opsportal/opsportal/internal/shared/biztime"
)

func millisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := biztime.ToMillis(*t)
	return &ms
}

func timePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := biztime.FromMillis(*ms)
	return &t
}
