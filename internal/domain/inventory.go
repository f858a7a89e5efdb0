package domain

// InventoryEntry is the per-user count of owned-but-unplaced items for one
// (category, type, tier) combination. Quantity never goes negative.
type InventoryEntry struct {
	UserID   string       `json:"user_id"`
	Category ItemCategory `json:"category"`
	ItemType string       `json:"item_type"`
	Tier     Tier         `json:"tier"`
	Quantity int          `json:"quantity"`
}

// ItemRef identifies one item by its catalog coordinates, independent of
// whether it currently sits in inventory or on the grid.
type ItemRef struct {
	Category ItemCategory `json:"category"`
	ItemType string       `json:"item_type"`
	Tier     Tier         `json:"tier"`
}
