package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidPosition   = "Invalid grid position"

	// Session operation error messages
	ErrMsgStartSessionFailed    = "Failed to start session"
	ErrMsgGetSessionFailed      = "Failed to get session"
	ErrMsgCompleteSessionFailed = "Failed to complete session"
	ErrMsgCancelSessionFailed   = "Failed to cancel session"

	// Garden operation error messages
	ErrMsgPlaceItemFailed  = "Failed to place item"
	ErrMsgRemoveItemFailed = "Failed to remove item"
	ErrMsgGetGridFailed    = "Failed to get garden"

	// Economy operation error messages
	ErrMsgAcquireItemFailed  = "Failed to acquire item"
	ErrMsgSellItemFailed     = "Failed to sell item"
	ErrMsgUpgradeItemFailed  = "Failed to upgrade item"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgCanAffordFailed    = "Failed to check affordability"

	// Stats error messages
	ErrMsgGetStatsFailed        = "Failed to get stats"
	ErrMsgGetAchievementsFailed = "Failed to get achievements"
	ErrMsgGetHistoryFailed      = "Failed to get reward history"
)
