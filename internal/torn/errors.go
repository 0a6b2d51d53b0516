package torn

import (
	"errors"
	"fmt"
)

// UpstreamError is returned when the Torn API answered with an application
// error envelope, or when transport/HTTP failures exhausted the retries.
// Code is the application error code, or 0 for transport and HTTP-status failures.
type UpstreamError struct {
	Code       int
	Message    string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("Torn API error %d: %s", e.Code, e.Message)
	}
	return "Torn API error: " + e.Message
}

// IsUpstreamError reports whether err carries an UpstreamError and returns it.
func IsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// Well-known Torn application error codes
const (
	CodeUnknown          = 0
	CodeKeyEmpty         = 1
	CodeIncorrectKey     = 2
	CodeTooManyRequests  = 5
	CodeAccessLevel      = 16
	CodeTemporaryDisable = 17
	CodeAPIPaused        = 18
)
