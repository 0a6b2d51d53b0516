package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgRateLimited      = "Request rate limited"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// PublicPaths bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
	"/swagger/",
}

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"

// Limits
const (
	MaxRequestBodyBytes = 1 << 20

	// Per-IP token bucket
	RequestsPerSecond = 5
	RequestBurst      = 20

	FailedAuthAlertThreshold = 5
	FailedAuthWindow         = 5 * time.Minute
	LimiterIdleTTL           = 10 * time.Minute

	ReadHeaderTimeout = 5 * time.Second
)
