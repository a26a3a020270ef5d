package modelclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a model-call failure. The parse retry policy keys off this,
// and the delivery layer keys user-facing messages off it.
type Kind string

const (
	KindNetwork    Kind = "NETWORK_ERROR"    // no response received
	KindTimeout    Kind = "TIMEOUT_ERROR"    // client-side abort after deadline
	KindRateLimit  Kind = "RATE_LIMIT_ERROR" // HTTP 429
	KindValidation Kind = "VALIDATION_ERROR" // malformed request or unparseable model output, other 4xx
	KindAPI        Kind = "API_ERROR"        // HTTP 5xx or server-signaled failure
	KindUnknown    Kind = "UNKNOWN_ERROR"
)

// Retryable reports whether a failure of this kind is transient.
func (k Kind) Retryable() bool {
	switch k {
	case KindNetwork, KindTimeout, KindAPI:
		return true
	}
	return false
}

// UserMessage returns the human-readable message shown for this kind.
func (k Kind) UserMessage() string {
	switch k {
	case KindNetwork:
		return "connection problem, please check your network"
	case KindTimeout:
		return "the AI assistant took too long, please try again"
	case KindRateLimit:
		return "too many requests, please wait a moment"
	case KindValidation:
		return "the AI assistant could not understand that input"
	case KindAPI:
		return "the AI assistant is unavailable right now"
	}
	return "something went wrong, please try again"
}

// ModelError wraps a model-call failure with its classification.
type ModelError struct {
	Kind Kind
	Err  error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model call failed (%s): %v", e.Kind, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a classified model error.
func NewModelError(kind Kind, err error) *ModelError {
	return &ModelError{Kind: kind, Err: err}
}

// KindOf extracts the classification from err, defaulting to KindUnknown.
func KindOf(err error) Kind {
	var me *ModelError
	if errors.As(err, &me) {
		return me.Kind
	}
	return KindUnknown
}

// classifyStatus maps a non-2xx HTTP status to an error kind.
func classifyStatus(statusCode int) Kind {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return KindRateLimit
	case statusCode >= 500:
		return KindAPI
	case statusCode >= 400:
		return KindValidation
	}
	return KindUnknown
}

// classifyTransport maps a transport-level error to an error kind.
func classifyTransport(ctx context.Context, err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return KindTimeout
	}
	return KindNetwork
}
