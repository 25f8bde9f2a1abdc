// Package ratelimit builds token-bucket limiters sized for the
// per-minute request budgets the network application enforces.
package ratelimit

import "golang.org/x/time/rate"

// PerMinute returns a limiter that admits requestsPerMinute requests per
// minute. Tokens refill continuously at requestsPerMinute/60 per second
// and the burst capacity equals the full minute budget, so a fresh
// limiter absorbs an initial burst before throttling kicks in.
func PerMinute(requestsPerMinute int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
}
