package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// AddItem increments the count for one catalog entry
func (r *InventoryRepository) AddItem(ctx context.Context, userID string, item domain.ItemRef, quantity int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO inventory_entries (user_id, category, item_type, tier, quantity)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, category, item_type, tier) DO UPDATE SET
		     quantity = inventory_entries.quantity + $5`,
		userID, item.Category, item.ItemType, item.Tier, quantity)
	if err != nil {
		return fmt.Errorf("failed to add inventory item: %w", err)
	}
	return nil
}

// RemoveItem conditionally decrements the count; reports false when the user
// does not hold the requested quantity.
func (r *InventoryRepository) RemoveItem(ctx context.Context, userID string, item domain.ItemRef, quantity int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE inventory_entries
		 SET quantity = quantity - $5
		 WHERE user_id = $1 AND category = $2 AND item_type = $3 AND tier = $4 AND quantity >= $5`,
		userID, item.Category, item.ItemType, item.Tier, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to remove inventory item: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetInventory returns all entries with a positive count
func (r *InventoryRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, category, item_type, tier, quantity
		 FROM inventory_entries
		 WHERE user_id = $1 AND quantity > 0
		 ORDER BY category, tier, item_type`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.UserID, &e.Category, &e.ItemType, &e.Tier, &e.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountOwned sums the inventoried quantity for a category across types; a nil
// tier counts all tiers.
func (r *InventoryRepository) CountOwned(ctx context.Context, userID string, category domain.ItemCategory, tier *domain.Tier) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0)
		 FROM inventory_entries
		 WHERE user_id = $1 AND category = $2 AND ($3::text IS NULL OR tier = $3)`,
		userID, category, tier).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count owned items: %w", err)
	}
	return count, nil
}
