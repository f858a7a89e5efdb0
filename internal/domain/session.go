package domain

import "time"

// SessionKind distinguishes the two timed activities users can run.
type SessionKind string

const (
	SessionHunger SessionKind = "hunger"
	SessionGrass  SessionKind = "grass"
)

// Valid reports whether the kind is one of the supported session kinds.
func (k SessionKind) Valid() bool {
	return k == SessionHunger || k == SessionGrass
}

// GrassRewardType records which reward a completed grass session produced.
type GrassRewardType string

const (
	GrassRewardFlower        GrassRewardType = "flower"
	GrassRewardOrnamentBonus GrassRewardType = "ornament-bonus"
)

// TimedSession is a single clock-bounded activity (hunger episode or screen break).
// At most one open session (EndTime == nil) exists per user per kind.
// Lifecycle: OPEN -> COMPLETED or OPEN -> CANCELLED; both are terminal.
type TimedSession struct {
	ID                     string           `json:"id"`
	UserID                 string           `json:"user_id"`
	Kind                   SessionKind      `json:"kind"`
	StartTime              time.Time        `json:"start_time"`
	EndTime                *time.Time       `json:"end_time,omitempty"`
	Completed              bool             `json:"completed"`
	PlannedDurationSeconds int              `json:"planned_duration_seconds"`
	RewardType             *GrassRewardType `json:"reward_type,omitempty"`
}

// Open reports whether the session is still running.
func (s *TimedSession) Open() bool {
	return s.EndTime == nil
}

// Cancelled reports whether the session was ended without completing.
func (s *TimedSession) Cancelled() bool {
	return s.EndTime != nil && !s.Completed
}

// DurationSeconds returns the recorded duration, or 0 while still open.
func (s *TimedSession) DurationSeconds() int {
	if s.EndTime == nil {
		return 0
	}
	return int(s.EndTime.Sub(s.StartTime).Seconds())
}
