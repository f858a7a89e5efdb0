package domain

import "time"

// RewardKind identifies what a reward event granted.
type RewardKind string

const (
	RewardCookie   RewardKind = "cookie"
	RewardCurrency RewardKind = "currency"
)

// CookieRarity is the rarity drawn for a hunger-session cookie.
// Special is reserved for out-of-band grants and is never rolled.
type CookieRarity string

const (
	CookieCommon   CookieRarity = "common"
	CookieUncommon CookieRarity = "uncommon"
	CookieRare     CookieRarity = "rare"
	CookieEpic     CookieRarity = "epic"
	CookieSpecial  CookieRarity = "special"
)

// RewardEvent is the single authoritative record that one cookie or one unit
// of garden currency was granted. Append-only; at most one event per
// reward-eligible session (enforced by a unique constraint on the source).
type RewardEvent struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"user_id"`
	SourceSessionID    *string       `json:"source_session_id,omitempty"`
	Kind               RewardKind    `json:"kind"`
	CookieRarity       *CookieRarity `json:"cookie_rarity,omitempty"`
	StreakCountAtEvent int           `json:"streak_count_at_event"`
	CreatedAt          time.Time     `json:"created_at"`
}

// CookieAward is the outcome of completing a hunger session.
type CookieAward struct {
	Rarity        CookieRarity `json:"rarity"`
	CurrentStreak int          `json:"current_streak"`
	LongestStreak int          `json:"longest_streak"`
	TotalCookies  int          `json:"total_cookies"`
}

// GrassAward is the outcome of completing a grass session. Currency is always
// granted; the ornament fields are set only when the independent bonus roll hits.
type GrassAward struct {
	CurrencyGranted   int             `json:"currency_granted"`
	CurrencyAvailable int             `json:"currency_available"`
	SessionsCompleted int             `json:"sessions_completed"`
	OrnamentGranted   bool            `json:"ornament_granted"`
	OrnamentType      string          `json:"ornament_type,omitempty"`
	OrnamentTier      Tier            `json:"ornament_tier,omitempty"`
	RewardType        GrassRewardType `json:"reward_type"`
}

// CompletionResult is returned by session completion. AlreadyCompleted marks
// the idempotent path: the caller lost the completion race or retried, and no
// new reward was granted.
type CompletionResult struct {
	Session          *TimedSession `json:"session"`
	Cookie           *CookieAward  `json:"cookie,omitempty"`
	Grass            *GrassAward   `json:"grass,omitempty"`
	AlreadyCompleted bool          `json:"already_completed"`
}
