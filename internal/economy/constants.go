package economy

// Log messages
const (
	LogMsgItemAcquired          = "Item acquired"
	LogMsgAcquiredFromInventory = "Item withdrawn from inventory"
	LogMsgItemSold              = "Item sold"
	LogMsgItemUpgraded          = "Item upgraded"
	LogMsgCompensationFailed    = "Compensating write failed"
	LogMsgRestoreFailed         = "Failed to restore displaced occupant"
	LogMsgReconcileExcess       = "Materialized flowers exceed available currency"
	LogMsgReconcileRemoved      = "Reconciliation removed placement"
	LogMsgReconciled            = "Garden reconciled"
	LogMsgReconcileError        = "Reconciliation failed"
	LogMsgEventPublishError     = "Event publish failed"
)
