package torn

import "time"

// Client defaults
const (
	DefaultTimeout     = 20 * time.Second
	DefaultRetryBase   = 500 * time.Millisecond
	DefaultMaxRetries  = 3
	DefaultBurst       = 10
	DefaultPerMinute   = 90
	maxResponseBytes   = 8 << 20
	AttacksPageSize    = 100
	PathAttacksFull    = "/faction/attacksfull"
	PathFactionMembers = "/faction/"
	PathUserSelf       = "/user/"
)

// Request outcome labels
const (
	outcomeSuccess   = "success"
	outcomeHTTP      = "http_error"
	outcomeAPI       = "api_error"
	outcomeTransport = "transport_error"
	outcomeDecode    = "decode_error"
)

// Error messages
const (
	ErrMsgRequestFailed    = "request failed"
	ErrMsgUnexpectedStatus = "unexpected HTTP status"
	ErrMsgInvalidJSON      = "invalid JSON response"
	ErrMsgUnknownAPIError  = "unknown error"
	ErrMsgBuildRequest     = "failed to build request"
	ErrMsgReadBody         = "failed to read response body"
)

// Log messages
const (
	LogMsgRetrying       = "Retrying upstream request"
	LogMsgUpstreamFailed = "Upstream request failed"
	LogMsgCursorMissing  = "Attack page ended without a usable cursor"
)
