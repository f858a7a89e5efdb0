package reward

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hollyoak/GrazeGarden_Go/internal/clock"
	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
	"github.com/hollyoak/GrazeGarden_Go/internal/repository"
	"github.com/hollyoak/GrazeGarden_Go/internal/utils"
)

// Service defines the interface for reward computation. The completion
// handlers run once per session: session completion's conditional flip is the
// authorizing event, and the unique reward-event-per-session constraint backs
// it against retries.
type Service interface {
	// OnHungerCompleted grants exactly one cookie for a completed hunger
	// session and advances the streak.
	OnHungerCompleted(ctx context.Context, session *domain.TimedSession) (*domain.CookieAward, error)

	// OnGrassCompleted grants one unit of garden currency for a completed
	// grass session, with an independent chance of a bonus ornament.
	OnGrassCompleted(ctx context.Context, session *domain.TimedSession) (*domain.GrassAward, error)

	// Achievements computes the user's unlocks from current stats.
	Achievements(ctx context.Context, userID string) ([]domain.Achievement, error)

	// Snapshot returns the combined cookie and garden aggregates, cached.
	Snapshot(ctx context.Context, userID string) (*domain.StatsSnapshot, error)

	// InvalidateSnapshot drops the cached snapshot after an external
	// currency-affecting write.
	InvalidateSnapshot(userID string)

	// History returns the newest reward events for a user.
	History(ctx context.Context, userID string, limit int) ([]domain.RewardEvent, error)
}

type service struct {
	rewards          repository.Reward
	stats            repository.Stats
	sessions         repository.Session
	inventory        repository.Inventory
	bus              event.Bus
	clk              clock.Clock
	rnd              func() float64
	ornamentsEnabled bool
	snapshots        *snapshotCache
}

// NewService creates a new reward service
func NewService(
	rewards repository.Reward,
	stats repository.Stats,
	sessions repository.Session,
	inventory repository.Inventory,
	bus event.Bus,
	clk clock.Clock,
	ornamentsEnabled bool,
) Service {
	return &service{
		rewards:          rewards,
		stats:            stats,
		sessions:         sessions,
		inventory:        inventory,
		bus:              bus,
		clk:              clk,
		rnd:              utils.RandomFloat,
		ornamentsEnabled: ornamentsEnabled,
		snapshots:        newSnapshotCache(SnapshotCacheSize, SnapshotCacheTTL),
	}
}

func (s *service) OnHungerCompleted(ctx context.Context, session *domain.TimedSession) (*domain.CookieAward, error) {
	log := logger.FromContext(ctx)

	grantedAt := s.clk.Now()
	if session.EndTime != nil {
		grantedAt = *session.EndTime
	}

	rarity := rollCookieRarity(s.rnd)

	cookieStats, err := s.stats.ApplyCookie(ctx, session.UserID, grantedAt, StreakWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to apply cookie stats: %w", err)
	}

	rewardEvent := &domain.RewardEvent{
		ID:                 uuid.NewString(),
		UserID:             session.UserID,
		SourceSessionID:    &session.ID,
		Kind:               domain.RewardCookie,
		CookieRarity:       &rarity,
		StreakCountAtEvent: cookieStats.CurrentStreak,
		CreatedAt:          grantedAt,
	}
	inserted, err := s.rewards.InsertRewardEvent(ctx, rewardEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reward event: %w", err)
	}
	if !inserted {
		log.Warn(LogMsgDuplicateRewardEvent, "session_id", session.ID)
	}

	s.snapshots.Invalidate(session.UserID)

	if err := s.bus.Publish(ctx, event.NewCookieGrantedEvent(session.UserID, session.ID, rarity, cookieStats.CurrentStreak)); err != nil {
		log.Warn(LogMsgEventPublishSkipped, "error", err)
	}

	log.Info(LogMsgCookieGranted,
		"user_id", session.UserID,
		"rarity", rarity,
		"current_streak", cookieStats.CurrentStreak,
		"total_cookies", cookieStats.TotalCookies)

	return &domain.CookieAward{
		Rarity:        rarity,
		CurrentStreak: cookieStats.CurrentStreak,
		LongestStreak: cookieStats.LongestStreak,
		TotalCookies:  cookieStats.TotalCookies,
	}, nil
}

func (s *service) OnGrassCompleted(ctx context.Context, session *domain.TimedSession) (*domain.GrassAward, error) {
	log := logger.FromContext(ctx)

	grantedAt := s.clk.Now()
	if session.EndTime != nil {
		grantedAt = *session.EndTime
	}

	gardenStats, err := s.stats.ApplyGrassCompletion(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to apply grass completion: %w", err)
	}

	rewardEvent := &domain.RewardEvent{
		ID:              uuid.NewString(),
		UserID:          session.UserID,
		SourceSessionID: &session.ID,
		Kind:            domain.RewardCurrency,
		CreatedAt:       grantedAt,
	}
	inserted, err := s.rewards.InsertRewardEvent(ctx, rewardEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reward event: %w", err)
	}
	if !inserted {
		log.Warn(LogMsgDuplicateRewardEvent, "session_id", session.ID)
	}

	award := &domain.GrassAward{
		CurrencyGranted:   1,
		CurrencyAvailable: gardenStats.CurrencyAvailable,
		SessionsCompleted: gardenStats.TotalSessionsCompleted,
		RewardType:        domain.GrassRewardFlower,
	}

	// The bonus roll is independent of the currency grant; a failure on this
	// path never takes the currency back.
	if !s.ornamentsEnabled {
		log.Info(LogMsgOrnamentsDisabled, "user_id", session.UserID)
	} else if s.rnd() < OrnamentBonusChance {
		s.grantOrnament(ctx, session.UserID, award)
	}

	if err := s.sessions.SetRewardType(ctx, session.ID, award.RewardType); err != nil {
		log.Warn(LogMsgRewardTypeWriteFailed, "error", err, "session_id", session.ID)
	}

	s.snapshots.Invalidate(session.UserID)

	if err := s.bus.Publish(ctx, event.NewCurrencyGrantedEvent(
		session.UserID, session.ID, award.CurrencyGranted, award.OrnamentGranted, award.OrnamentType)); err != nil {
		log.Warn(LogMsgEventPublishSkipped, "error", err)
	}

	log.Info(LogMsgCurrencyGranted,
		"user_id", session.UserID,
		"currency_available", gardenStats.CurrencyAvailable,
		"sessions_completed", gardenStats.TotalSessionsCompleted,
		"ornament_granted", award.OrnamentGranted)

	return award, nil
}

// grantOrnament materializes a bonus ornament in the user's inventory. A
// store failure here degrades to currency-only, wrapped in the award already
// returned to the caller.
func (s *service) grantOrnament(ctx context.Context, userID string, award *domain.GrassAward) {
	log := logger.FromContext(ctx)

	tier := rollOrnamentTier(s.rnd)
	ornamentType := utils.PickRandom(domain.ItemTypes(domain.CategoryOrnament), s.rnd)
	item := domain.ItemRef{Category: domain.CategoryOrnament, ItemType: ornamentType, Tier: tier}

	if err := s.inventory.AddItem(ctx, userID, item, 1); err != nil {
		log.Warn(LogMsgOrnamentGrantFailed, "error", err,
			"user_id", userID, "ornament_type", ornamentType,
			"reason", domain.ErrMsgDependencyUnavailable)
		return
	}

	award.OrnamentGranted = true
	award.OrnamentType = ornamentType
	award.OrnamentTier = tier
	award.RewardType = domain.GrassRewardOrnamentBonus

	log.Info(LogMsgOrnamentGranted, "user_id", userID, "ornament_type", ornamentType, "tier", tier)
}

func (s *service) Achievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	cookieStats, err := s.stats.GetCookieStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cookie stats: %w", err)
	}
	return computeAchievements(cookieStats), nil
}

func (s *service) Snapshot(ctx context.Context, userID string) (*domain.StatsSnapshot, error) {
	if cached, ok := s.snapshots.Get(userID); ok {
		return cached, nil
	}

	cookieStats, err := s.stats.GetCookieStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cookie stats: %w", err)
	}
	gardenStats, err := s.stats.GetGardenStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get garden stats: %w", err)
	}

	snapshot := &domain.StatsSnapshot{
		Cookie: *cookieStats,
		Garden: *gardenStats,
	}
	s.snapshots.Set(userID, snapshot)
	return snapshot, nil
}

func (s *service) InvalidateSnapshot(userID string) {
	s.snapshots.Invalidate(userID)
}

func (s *service) History(ctx context.Context, userID string, limit int) ([]domain.RewardEvent, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	events, err := s.rewards.ListRewardEvents(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward events: %w", err)
	}
	return events, nil
}
