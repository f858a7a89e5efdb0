package garden

// Log messages
const (
	LogMsgItemPlaced        = "Item placed"
	LogMsgItemReplaced      = "Item replaced"
	LogMsgItemRemoved       = "Item removed"
	LogMsgReturnFailed      = "Failed to return item to inventory"
	LogMsgEventPublishError = "Event publish failed"
)
