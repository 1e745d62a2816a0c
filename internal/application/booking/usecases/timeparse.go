package usecases

import (
	"strings"
	"time"

	"github.com/opsportal/opsportal/internal/shared/errors"
)

func parseRFC3339(raw, field string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.NewValidationError(field + " is required")
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid "+field, "expected RFC3339, e.g. 2026-03-02T14:00:00Z")
	}
	return t.UTC(), nil
}
