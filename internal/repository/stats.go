package repository

import (
	"context"
	"time"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// Stats defines the interface for the per-user aggregate projections.
//
// Every mutation is a single atomic increment-upsert keyed by user ID; the
// store serializes concurrent writers on the row, so arrival order never
// corrupts the sums. Plain read-modify-write of these counters is forbidden.
type Stats interface {
	// ApplyCookie upserts the cookie aggregates for one cookie granted at
	// grantedAt: total +1, streak reset to 1 when the gap since the previous
	// cookie exceeds streakWindow (or no cookie exists), otherwise +1, and
	// longest raised to match. Returns the resulting row.
	ApplyCookie(ctx context.Context, userID string, grantedAt time.Time, streakWindow time.Duration) (*domain.CookieStats, error)

	// ApplyGrassCompletion upserts the garden aggregates for one completed
	// grass session: sessions +1, earned +1, available +1. Returns the
	// resulting row.
	ApplyGrassCompletion(ctx context.Context, userID string) (*domain.GardenStats, error)

	GetCookieStats(ctx context.Context, userID string) (*domain.CookieStats, error)
	GetGardenStats(ctx context.Context, userID string) (*domain.GardenStats, error)

	// DebitCurrency subtracts amount only when the balance covers it,
	// reporting whether the debit applied.
	DebitCurrency(ctx context.Context, userID string, amount int) (bool, error)
	CreditCurrency(ctx context.Context, userID string, amount int) error
}
