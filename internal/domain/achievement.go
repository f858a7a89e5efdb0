package domain

// Achievement is a read-side unlock computed from stats. Nothing is stored:
// the inputs are monotonic, so recomputation is idempotent.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Threshold   int    `json:"threshold"`
	Unlocked    bool   `json:"unlocked"`
}

// CookieAchievementThresholds are the ascending totalCookies cutoffs.
var CookieAchievementThresholds = []struct {
	ID        string
	Name      string
	Threshold int
}{
	{"cookies_1", "First Bite", 1},
	{"cookies_10", "Cookie Jar", 10},
	{"cookies_50", "Full Pantry", 50},
	{"cookies_100", "Bakery Regular", 100},
	{"cookies_500", "Cookie Monster", 500},
}

// StreakAchievementThresholds are the ascending longestStreak cutoffs.
var StreakAchievementThresholds = []struct {
	ID        string
	Name      string
	Threshold int
}{
	{"streak_3", "Warming Up", 3},
	{"streak_7", "One Week Strong", 7},
	{"streak_14", "Fortnight Focus", 14},
	{"streak_30", "Habit Formed", 30},
}
