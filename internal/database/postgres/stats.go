package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// StatsRepository implements the stats repository for PostgreSQL.
// All counter mutations are single-statement increment-upserts keyed by
// user_id; Postgres serializes concurrent writers on the row.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// ApplyCookie applies one cookie grant and its streak transition atomically.
// The streak arithmetic runs inside the upsert so a concurrent cookie for the
// same user can never be computed from a stale read.
func (r *StatsRepository) ApplyCookie(ctx context.Context, userID string, grantedAt time.Time, streakWindow time.Duration) (*domain.CookieStats, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO cookie_stats (user_id, total_cookies, current_streak, longest_streak, last_cookie_at)
		 VALUES ($1, 1, 1, 1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET
		     total_cookies  = cookie_stats.total_cookies + 1,
		     current_streak = CASE
		         WHEN cookie_stats.last_cookie_at IS NULL
		           OR $2::timestamptz - cookie_stats.last_cookie_at > make_interval(secs => $3)
		         THEN 1
		         ELSE cookie_stats.current_streak + 1
		     END,
		     longest_streak = GREATEST(cookie_stats.longest_streak, CASE
		         WHEN cookie_stats.last_cookie_at IS NULL
		           OR $2::timestamptz - cookie_stats.last_cookie_at > make_interval(secs => $3)
		         THEN 1
		         ELSE cookie_stats.current_streak + 1
		     END),
		     last_cookie_at = $2
		 RETURNING user_id, total_cookies, current_streak, longest_streak, last_cookie_at`,
		userID, grantedAt, streakWindow.Seconds())
	return scanCookieStats(row)
}

// ApplyGrassCompletion applies the aggregates for one completed grass session
func (r *StatsRepository) ApplyGrassCompletion(ctx context.Context, userID string) (*domain.GardenStats, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO garden_stats (user_id, total_sessions_completed, total_currency_earned, currency_available)
		 VALUES ($1, 1, 1, 1)
		 ON CONFLICT (user_id) DO UPDATE SET
		     total_sessions_completed = garden_stats.total_sessions_completed + 1,
		     total_currency_earned    = garden_stats.total_currency_earned + 1,
		     currency_available       = garden_stats.currency_available + 1
		 RETURNING user_id, total_sessions_completed, total_currency_earned, currency_available`,
		userID)
	return scanGardenStats(row)
}

// GetCookieStats retrieves the cookie aggregates; zero-valued when absent
func (r *StatsRepository) GetCookieStats(ctx context.Context, userID string) (*domain.CookieStats, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, total_cookies, current_streak, longest_streak, last_cookie_at
		 FROM cookie_stats WHERE user_id = $1`, userID)
	stats, err := scanCookieStats(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.CookieStats{UserID: userID}, nil
		}
		return nil, err
	}
	return stats, nil
}

// GetGardenStats retrieves the garden aggregates; zero-valued when absent
func (r *StatsRepository) GetGardenStats(ctx context.Context, userID string) (*domain.GardenStats, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, total_sessions_completed, total_currency_earned, currency_available
		 FROM garden_stats WHERE user_id = $1`, userID)
	stats, err := scanGardenStats(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.GardenStats{UserID: userID}, nil
		}
		return nil, err
	}
	return stats, nil
}

// DebitCurrency subtracts amount when the balance covers it
func (r *StatsRepository) DebitCurrency(ctx context.Context, userID string, amount int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE garden_stats
		 SET currency_available = currency_available - $2
		 WHERE user_id = $1 AND currency_available >= $2`,
		userID, amount)
	if err != nil {
		return false, fmt.Errorf("failed to debit currency: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CreditCurrency adds amount to the available balance
func (r *StatsRepository) CreditCurrency(ctx context.Context, userID string, amount int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO garden_stats (user_id, total_sessions_completed, total_currency_earned, currency_available)
		 VALUES ($1, 0, 0, $2)
		 ON CONFLICT (user_id) DO UPDATE SET
		     currency_available = garden_stats.currency_available + $2`,
		userID, amount)
	if err != nil {
		return fmt.Errorf("failed to credit currency: %w", err)
	}
	return nil
}

func scanCookieStats(row pgx.Row) (*domain.CookieStats, error) {
	var s domain.CookieStats
	var lastCookieAt *time.Time
	if err := row.Scan(&s.UserID, &s.TotalCookies, &s.CurrentStreak, &s.LongestStreak, &lastCookieAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan cookie stats: %w", err)
	}
	s.LastCookieAt = lastCookieAt
	return &s, nil
}

func scanGardenStats(row pgx.Row) (*domain.GardenStats, error) {
	var s domain.GardenStats
	if err := row.Scan(&s.UserID, &s.TotalSessionsCompleted, &s.TotalCurrencyEarned, &s.CurrencyAvailable); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan garden stats: %w", err)
	}
	return &s, nil
}
