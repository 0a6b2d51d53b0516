package handler

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	MsgStoreUnavailable = "database connection failed"
)

// User-facing error messages
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgNoCredential       = "No faction API key is configured"
	ErrMsgUpstreamFailed     = "Torn API request failed"
	ErrMsgStoreFailed        = "Storage error, please try again later"
	ErrMsgRequestCancelled   = "Request cancelled or timed out"
)

// Log messages
const (
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgLeaderboardError = "Leaderboard request failed"
	LogMsgSyncError        = "Manual sync failed"
	LogMsgSyncTriggered    = "Manual sync triggered"
)
