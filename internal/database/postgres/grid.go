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

// GridRepository implements the garden grid repository for PostgreSQL
type GridRepository struct {
	db *pgxpool.Pool
}

// NewGridRepository creates a new GridRepository
func NewGridRepository(db *pgxpool.Pool) *GridRepository {
	return &GridRepository{db: db}
}

const placementColumns = `user_id, pos_x, pos_y, category, item_type, tier, placed_at`

func scanPlacement(row pgx.Row) (*domain.GridPlacement, error) {
	var p domain.GridPlacement
	if err := row.Scan(&p.UserID, &p.X, &p.Y, &p.Category, &p.ItemType, &p.Tier, &p.PlacedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// PlaceItem fills an empty cell. The primary key on (user_id, pos_x, pos_y)
// means a concurrent placement on the same cell loses with false, nil.
func (r *GridRepository) PlaceItem(ctx context.Context, placement *domain.GridPlacement) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO grid_placements (user_id, pos_x, pos_y, category, item_type, tier, placed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, pos_x, pos_y) DO NOTHING`,
		placement.UserID, placement.X, placement.Y, placement.Category, placement.ItemType, placement.Tier, placement.PlacedAt)
	if err != nil {
		return false, fmt.Errorf("failed to place item: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReplaceItem swaps the occupant of a cell, guarded by the expected current
// occupant so a concurrent change makes the swap lose instead of clobbering.
func (r *GridRepository) ReplaceItem(ctx context.Context, userID string, x, y int, expect, next domain.ItemRef, placedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE grid_placements
		 SET category = $7, item_type = $8, tier = $9, placed_at = $10
		 WHERE user_id = $1 AND pos_x = $2 AND pos_y = $3
		   AND category = $4 AND item_type = $5 AND tier = $6`,
		userID, x, y, expect.Category, expect.ItemType, expect.Tier,
		next.Category, next.ItemType, next.Tier, placedAt)
	if err != nil {
		return false, fmt.Errorf("failed to replace item: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// RemovePlacement clears a cell and returns what was there, or nil
func (r *GridRepository) RemovePlacement(ctx context.Context, userID string, x, y int) (*domain.GridPlacement, error) {
	row := r.db.QueryRow(ctx,
		`DELETE FROM grid_placements
		 WHERE user_id = $1 AND pos_x = $2 AND pos_y = $3
		 RETURNING `+placementColumns,
		userID, x, y)
	p, err := scanPlacement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to remove placement: %w", err)
	}
	return p, nil
}

// GetPlacement retrieves the occupant of a cell, or nil when empty
func (r *GridRepository) GetPlacement(ctx context.Context, userID string, x, y int) (*domain.GridPlacement, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+placementColumns+` FROM grid_placements
		 WHERE user_id = $1 AND pos_x = $2 AND pos_y = $3`,
		userID, x, y)
	p, err := scanPlacement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get placement: %w", err)
	}
	return p, nil
}

// GetGrid retrieves every placed item for a user
func (r *GridRepository) GetGrid(ctx context.Context, userID string) ([]domain.GridPlacement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+placementColumns+` FROM grid_placements
		 WHERE user_id = $1
		 ORDER BY pos_y, pos_x`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get grid: %w", err)
	}
	defer rows.Close()

	var placements []domain.GridPlacement
	for rows.Next() {
		var p domain.GridPlacement
		if err := rows.Scan(&p.UserID, &p.X, &p.Y, &p.Category, &p.ItemType, &p.Tier, &p.PlacedAt); err != nil {
			return nil, fmt.Errorf("failed to scan placement: %w", err)
		}
		placements = append(placements, p)
	}
	return placements, rows.Err()
}

// CountPlaced counts placed items of a category; a nil tier counts all tiers
func (r *GridRepository) CountPlaced(ctx context.Context, userID string, category domain.ItemCategory, tier *domain.Tier) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM grid_placements
		 WHERE user_id = $1 AND category = $2 AND ($3::text IS NULL OR tier = $3)`,
		userID, category, tier).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count placed items: %w", err)
	}
	return count, nil
}

// UpdateTier advances a placed item's tier, guarded by the expected current tier
func (r *GridRepository) UpdateTier(ctx context.Context, userID string, x, y int, from, to domain.Tier) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE grid_placements
		 SET tier = $5
		 WHERE user_id = $1 AND pos_x = $2 AND pos_y = $3 AND tier = $4`,
		userID, x, y, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to update tier: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveNewest deletes the most recently placed item of a category
func (r *GridRepository) RemoveNewest(ctx context.Context, userID string, category domain.ItemCategory) (*domain.GridPlacement, error) {
	row := r.db.QueryRow(ctx,
		`DELETE FROM grid_placements
		 WHERE ctid IN (
		     SELECT ctid FROM grid_placements
		     WHERE user_id = $1 AND category = $2
		     ORDER BY placed_at DESC
		     LIMIT 1
		 )
		 RETURNING `+placementColumns,
		userID, category)
	p, err := scanPlacement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to remove newest placement: %w", err)
	}
	return p, nil
}
