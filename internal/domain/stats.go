package domain

import "time"

// CookieStats is the per-user cookie aggregate. A materialized projection of
// the reward event log; always mutated by atomic per-row upserts, never by
// read-modify-write.
type CookieStats struct {
	UserID        string     `json:"user_id"`
	TotalCookies  int        `json:"total_cookies"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastCookieAt  *time.Time `json:"last_cookie_at,omitempty"`
}

// GardenStats is the per-user garden aggregate, projected from the same log.
type GardenStats struct {
	UserID                 string `json:"user_id"`
	TotalSessionsCompleted int    `json:"total_sessions_completed"`
	TotalCurrencyEarned    int    `json:"total_currency_earned"`
	CurrencyAvailable      int    `json:"currency_available"`
}

// StatsSnapshot bundles both aggregates for read accessors.
type StatsSnapshot struct {
	Cookie CookieStats `json:"cookie"`
	Garden GardenStats `json:"garden"`
}
