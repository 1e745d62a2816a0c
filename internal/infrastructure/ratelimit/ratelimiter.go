// Package ratelimit counts requests per key in sliding windows held in Redis.
package ratelimit

import "context"

// Policy caps requests per key. A zero limit disables that window.
type Policy struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

func (p Policy) Enabled() bool {
	return p.RequestsPerMinute > 0 || p.RequestsPerHour > 0
}

type Limiter interface {
	Allow(ctx context.Context, key string, policy Policy) (bool, error)
	Reset(ctx context.Context, key string) error
}
