package contract

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Handlers map these onto HTTP statuses;
// the core never maps or retries.
var (
	// ErrNotFound means a requested entity has no stored record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter means a selector carried an unrecognized value.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUpstream means the external data store failed or was unreachable.
	ErrUpstream = errors.New("upstream unavailable")
)

// NotFound reports a missing entity, e.g. NotFound("user", "octocat").
func NotFound(resource, key string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, resource, key)
}

// InvalidParameter reports an unrecognized selector value.
func InvalidParameter(param, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidParameter, param, value)
}

// Upstream wraps a data store failure with the upstream error kind.
func Upstream(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
