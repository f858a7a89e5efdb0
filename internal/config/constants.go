package config

import "time"

// Default server and pool settings
const (
	DefaultPort       = 8080
	DefaultDBMaxConns = 10

	DefaultDBMaxConnIdle = 5 * time.Minute
	DefaultDBMaxConnLife = 30 * time.Minute
)

// Event plumbing defaults
const (
	DefaultEventDeadLetterPath   = "data/dead_letter_events.jsonl"
	DefaultEventLogRetentionDays = 90
)

// ServiceName identifies this service in logs and metrics
const ServiceName = "graze-garden"
