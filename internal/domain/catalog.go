package domain

// ItemKind separates plants from ornaments on the garden grid.
// The two kinds share cells but are not interchangeable on replacement.
type ItemKind string

const (
	KindPlant    ItemKind = "plant"
	KindOrnament ItemKind = "ornament"
)

// ItemCategory is a fixed catalog family. Flower doubles as the garden
// currency item; ornaments are earned as bonus drops, never bought.
type ItemCategory string

const (
	CategoryFlower   ItemCategory = "flower"
	CategorySprout   ItemCategory = "sprout"
	CategoryShrub    ItemCategory = "shrub"
	CategoryTree     ItemCategory = "tree"
	CategoryBlossom  ItemCategory = "blossom"
	CategoryOrnament ItemCategory = "ornament"
)

// baseCosts is the fixed purchase cost of a basic-tier item per category.
var baseCosts = map[ItemCategory]int{
	CategoryFlower:   0,
	CategorySprout:   5,
	CategoryShrub:    10,
	CategoryTree:     15,
	CategoryBlossom:  20,
	CategoryOrnament: 0,
}

// Valid reports whether the category is part of the catalog.
func (c ItemCategory) Valid() bool {
	_, ok := baseCosts[c]
	return ok
}

// Kind returns which grid kind items of this category are.
func (c ItemCategory) Kind() ItemKind {
	if c == CategoryOrnament {
		return KindOrnament
	}
	return KindPlant
}

// BaseCost returns the currency cost of a basic-tier item of this category.
func (c ItemCategory) BaseCost() int {
	return baseCosts[c]
}

// Purchasable reports whether the category can be acquired with currency.
// Ornaments only enter the game as grass-session bonus drops.
func (c ItemCategory) Purchasable() bool {
	return c.Valid() && c != CategoryOrnament
}

// PurchasableCategories lists the categories buyable with currency, cheapest first.
func PurchasableCategories() []ItemCategory {
	return []ItemCategory{CategoryFlower, CategorySprout, CategoryShrub, CategoryTree, CategoryBlossom}
}

// Tier is one of four ordered upgrade levels per item.
type Tier string

const (
	TierBasic     Tier = "basic"
	TierRare      Tier = "rare"
	TierEpic      Tier = "epic"
	TierLegendary Tier = "legendary"
)

// tierOrder maps tiers to their ordinal position, basic first.
var tierOrder = map[Tier]int{
	TierBasic:     0,
	TierRare:      1,
	TierEpic:      2,
	TierLegendary: 3,
}

// upgradeStepCosts is the fixed cost of reaching each tier from the one below it.
var upgradeStepCosts = map[Tier]int{
	TierRare:      5,
	TierEpic:      10,
	TierLegendary: 15,
}

// Valid reports whether the tier is one of the four catalog tiers.
func (t Tier) Valid() bool {
	_, ok := tierOrder[t]
	return ok
}

// Ordinal returns the tier's position, basic = 0.
func (t Tier) Ordinal() int {
	return tierOrder[t]
}

// Next returns the tier above, or empty string at legendary.
func (t Tier) Next() Tier {
	switch t {
	case TierBasic:
		return TierRare
	case TierRare:
		return TierEpic
	case TierEpic:
		return TierLegendary
	default:
		return ""
	}
}

// Previous returns the tier below, or empty string at basic.
func (t Tier) Previous() Tier {
	switch t {
	case TierRare:
		return TierBasic
	case TierEpic:
		return TierRare
	case TierLegendary:
		return TierEpic
	default:
		return ""
	}
}

// UpgradeCost returns the step cost of reaching this tier from the one below.
func (t Tier) UpgradeCost() int {
	return upgradeStepCosts[t]
}

// CumulativeUpgradeCost returns the total spent on upgrades to reach this tier
// from basic: 0 / 5 / 20 / 50.
func (t Tier) CumulativeUpgradeCost() int {
	total := 0
	for cur := t; cur != TierBasic && cur != ""; cur = cur.Previous() {
		total += cur.UpgradeCost()
	}
	return total
}

// AcquisitionCost returns the currency price of a fresh item of the given
// category and tier: base cost plus every upgrade step up to the tier.
func AcquisitionCost(category ItemCategory, tier Tier) int {
	return category.BaseCost() + tier.CumulativeUpgradeCost()
}

// SellValue returns the currency credited when an item is sold.
// The flower (currency) category sells for 1 at basic rather than its base
// cost of 0, so a materialized currency item always converts back to one unit.
func SellValue(category ItemCategory, tier Tier) int {
	base := category.BaseCost()
	if category == CategoryFlower {
		base = 1
	}
	return base + tier.CumulativeUpgradeCost()
}

// itemTypes lists the visual variants per category. The variant is cosmetic;
// costs and rules key off category and tier only.
var itemTypes = map[ItemCategory][]string{
	CategoryFlower:   {"daisy", "tulip", "poppy"},
	CategorySprout:   {"clover", "seedling"},
	CategoryShrub:    {"fern", "lavender"},
	CategoryTree:     {"bonsai", "willow"},
	CategoryBlossom:  {"cherry", "magnolia"},
	CategoryOrnament: {"gnome", "lantern", "birdbath", "windchime"},
}

// ItemTypes returns the visual variants available for a category.
func ItemTypes(category ItemCategory) []string {
	return itemTypes[category]
}

// DefaultItemType returns the first variant for a category.
func DefaultItemType(category ItemCategory) string {
	types := itemTypes[category]
	if len(types) == 0 {
		return ""
	}
	return types[0]
}
