package permission

import (
	"fmt"
	"strings"

	"github.com/opsportal/opsportal/internal/shared/logger"
)

// ParsePolicy splits a "role,resource,action" config entry.
func ParsePolicy(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("policy %q must be role,resource,action", raw)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, fmt.Errorf("policy %q has an empty field", raw)
		}
	}
	return parts, nil
}

// InitPolicies makes sure every configured policy exists. Existing rows are left as they are,
// so policies added at runtime survive a restart.
func InitPolicies(e *Enforcer, policies []string, log logger.Interface) error {
	for _, raw := range policies {
		p, err := ParsePolicy(raw)
		if err != nil {
			return err
		}
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", p[0],
				"resource", p[1],
				"action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	log.Infow("permission policies initialized", "count", len(policies))
	return nil
}
