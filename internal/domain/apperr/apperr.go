// Package apperr holds the sentinel errors shared across services. Handlers map
// them to transport responses; services only wrap them with context.
package apperr

import "errors"

// ErrNotFound indicates the lookup target does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation indicates a missing or invalid field in a caller submission.
var ErrValidation = errors.New("validation failed")

// ErrUpstreamUnavailable indicates the external weather provider failed or is
// not configured. It is propagated as-is; no fallback value is synthesized.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")
