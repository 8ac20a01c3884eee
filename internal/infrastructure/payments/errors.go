package payments

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/gbzindabb123-ops/mlb2/internal/domain/entities"
)

// ErrProviderTimeout marks an outbound call that exceeded the configured
// client timeout, distinguished from other transport failures for logs.
var ErrProviderTimeout = errors.New("provider call timed out")

// ProviderError is a non-success response from a provider API. Message keeps
// the upstream error text when the body carried one.
type ProviderError struct {
	Provider   entities.Provider
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s provider error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
}

// AuthError is a failed credential exchange with a provider's token endpoint.
type AuthError struct {
	Provider   entities.Provider
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s auth error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// TransportError wraps network or response-decoding failures, keyed on the
// provider the call was addressed to.
type TransportError struct {
	Provider entities.Provider
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport error: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// wrapTransport classifies err, folding deadline and net timeouts into
// ErrProviderTimeout.
func wrapTransport(provider entities.Provider, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TransportError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderTimeout, err)}
	}
	return &TransportError{Provider: provider, Err: err}
}
