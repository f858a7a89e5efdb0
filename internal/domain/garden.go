package domain

import "time"

// GridSize is the fixed width and height of every user's garden grid.
const GridSize = 5

// GridPlacement is one item occupying one cell. (UserID, X, Y) is unique:
// no two items ever share a cell.
type GridPlacement struct {
	UserID   string       `json:"user_id"`
	X        int          `json:"x"`
	Y        int          `json:"y"`
	Category ItemCategory `json:"category"`
	ItemType string       `json:"item_type"`
	Tier     Tier         `json:"tier"`
	PlacedAt time.Time    `json:"placed_at"`
}

// Item returns the catalog coordinates of the placed item.
func (p *GridPlacement) Item() ItemRef {
	return ItemRef{Category: p.Category, ItemType: p.ItemType, Tier: p.Tier}
}

// InBounds reports whether (x, y) lies on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// GridPos addresses one grid cell.
type GridPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}
