package reward

import "time"

// StreakWindow is the maximum gap between cookies before the streak resets.
const StreakWindow = 36 * time.Hour

// OrnamentBonusChance is the independent probability that a completed grass
// session drops a bonus ornament on top of the currency grant.
const OrnamentBonusChance = 0.20

// Snapshot cache configuration
const (
	// SnapshotCacheSize is the maximum number of cached stat snapshots
	SnapshotCacheSize = 1000

	// SnapshotCacheTTL is the time-to-live for cached snapshots
	SnapshotCacheTTL = 30 * time.Second
)

// DefaultHistoryLimit caps reward history reads when the caller passes no limit.
const DefaultHistoryLimit = 50

// Log messages
const (
	LogMsgCookieGranted         = "Cookie granted"
	LogMsgCurrencyGranted       = "Garden currency granted"
	LogMsgOrnamentGranted       = "Bonus ornament granted"
	LogMsgOrnamentsDisabled     = "Ornament subsystem disabled, skipping bonus roll"
	LogMsgOrnamentGrantFailed   = "Ornament grant failed, currency grant stands"
	LogMsgDuplicateRewardEvent  = "Reward event already recorded for session"
	LogMsgRewardTypeWriteFailed = "Failed to record grass reward type"
	LogMsgEventPublishSkipped   = "Event publish failed, reward already durable"
)
