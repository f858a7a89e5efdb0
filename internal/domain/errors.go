package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionAlreadyRunning = "a session of this kind is already running"
	ErrMsgSessionNotFound       = "session not found"
	ErrMsgSessionFinished       = "session is already finished"

	// Placement errors
	ErrMsgCellTaken               = "cell is already taken"
	ErrMsgOutOfBounds             = "position is outside the grid"
	ErrMsgIncompatibleReplacement = "occupant cannot be replaced by this item"

	// Economy errors
	ErrMsgInsufficientFunds   = "insufficient funds"
	ErrMsgMissingPrerequisite = "missing prerequisite tier"
	ErrMsgItemNotOwned        = "item not owned"

	// Capability errors
	ErrMsgDependencyUnavailable = "optional subsystem unavailable"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Session errors
	ErrSessionAlreadyRunning = errors.New(ErrMsgSessionAlreadyRunning)
	ErrSessionNotFound       = errors.New(ErrMsgSessionNotFound)
	ErrSessionFinished       = errors.New(ErrMsgSessionFinished)

	// Placement errors
	ErrCellTaken               = errors.New(ErrMsgCellTaken)
	ErrOutOfBounds             = errors.New(ErrMsgOutOfBounds)
	ErrIncompatibleReplacement = errors.New(ErrMsgIncompatibleReplacement)

	// Economy errors
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrMissingPrerequisite = errors.New(ErrMsgMissingPrerequisite)
	ErrItemNotOwned        = errors.New(ErrMsgItemNotOwned)

	// Capability errors
	ErrDependencyUnavailable = errors.New(ErrMsgDependencyUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
