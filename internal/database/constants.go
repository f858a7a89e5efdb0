package database

// Pool defaults
const (
	DefaultMinConnections = 2
)

// Error and log messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"

	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to database"
)
