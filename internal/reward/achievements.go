package reward

import (
	"fmt"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// computeAchievements derives the unlock list from cookie stats. Nothing is
// stored; totals and longest streak only grow, so recomputation is stable.
func computeAchievements(stats *domain.CookieStats) []domain.Achievement {
	achievements := make([]domain.Achievement, 0, len(domain.CookieAchievementThresholds)+len(domain.StreakAchievementThresholds))

	for _, t := range domain.CookieAchievementThresholds {
		achievements = append(achievements, domain.Achievement{
			ID:          t.ID,
			Name:        t.Name,
			Description: cookieDescription(t.Threshold),
			Threshold:   t.Threshold,
			Unlocked:    stats.TotalCookies >= t.Threshold,
		})
	}

	for _, t := range domain.StreakAchievementThresholds {
		achievements = append(achievements, domain.Achievement{
			ID:          t.ID,
			Name:        t.Name,
			Description: streakDescription(t.Threshold),
			Threshold:   t.Threshold,
			Unlocked:    stats.LongestStreak >= t.Threshold,
		})
	}

	return achievements
}

func cookieDescription(threshold int) string {
	if threshold == 1 {
		return "Earn your first cookie"
	}
	return fmt.Sprintf("Earn %d cookies", threshold)
}

func streakDescription(threshold int) string {
	return fmt.Sprintf("Keep a %d-cookie streak", threshold)
}
