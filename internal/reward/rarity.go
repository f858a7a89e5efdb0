package reward

import "github.com/hollyoak/GrazeGarden_Go/internal/domain"

// cookieRarityTable is the cumulative rarity distribution for hunger-session
// cookies. Special is reserved for out-of-band grants and never rolled.
var cookieRarityTable = []struct {
	Rarity     domain.CookieRarity
	Cumulative float64
}{
	{domain.CookieCommon, 0.70},
	{domain.CookieUncommon, 0.90},
	{domain.CookieRare, 0.98},
	{domain.CookieEpic, 1.00},
}

// ornamentTierTable is the cumulative tier distribution for bonus ornaments.
// The drop table's common and uncommon bands both materialize as basic tier.
var ornamentTierTable = []struct {
	Tier       domain.Tier
	Cumulative float64
}{
	{domain.TierBasic, 0.80},
	{domain.TierRare, 0.95},
	{domain.TierEpic, 0.99},
	{domain.TierLegendary, 1.00},
}

// rollCookieRarity draws a cookie rarity; rnd must yield values in [0, 1).
func rollCookieRarity(rnd func() float64) domain.CookieRarity {
	roll := rnd()
	for _, band := range cookieRarityTable {
		if roll < band.Cumulative {
			return band.Rarity
		}
	}
	return domain.CookieCommon
}

// rollOrnamentTier draws a bonus ornament tier; rnd must yield values in [0, 1).
func rollOrnamentTier(rnd func() float64) domain.Tier {
	roll := rnd()
	for _, band := range ornamentTierTable {
		if roll < band.Cumulative {
			return band.Tier
		}
	}
	return domain.TierBasic
}
