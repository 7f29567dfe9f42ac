// Package common defines shared constants and sentinel errors used across
// client and server layers of SealKeeper. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an unknown seal id, share id or share token.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState reports an operation the share's status forbids.
	ErrInvalidState = errors.New("invalid state")

	// ErrAuthorization reports a rejected access code at redemption.
	ErrAuthorization = errors.New("authorization failure")

	// ErrValidation reports malformed caller input.
	ErrValidation = errors.New("validation error")

	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
)

// Refinements. Each one wraps a taxonomy error above.
var (
	ErrShareRevoked = fmt.Errorf("share revoked: %w", ErrInvalidState)
	ErrCodeLive     = fmt.Errorf("access code still valid: %w", ErrInvalidState)

	ErrCodeMismatch = fmt.Errorf("access code mismatch: %w", ErrAuthorization)
	ErrCodeExpired  = fmt.Errorf("access code expired: %w", ErrAuthorization)
	ErrCodeLocked   = fmt.Errorf("access code locked after too many attempts: %w", ErrAuthorization)

	ErrEmptyContent        = fmt.Errorf("content is empty: %w", ErrValidation)
	ErrMissingManuscriptID = fmt.Errorf("manuscript id is missing: %w", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("malformed email address: %w", ErrValidation)
	ErrNegativePage        = fmt.Errorf("page must not be negative: %w", ErrValidation)
	ErrEmptyMessage        = fmt.Errorf("message body is empty: %w", ErrValidation)
	ErrUnknownAlgorithm    = fmt.Errorf("unknown hash algorithm: %w", ErrValidation)

	// ErrDeliveryFailed reports that a share mail could not be sent. The
	// share itself stays valid.
	ErrDeliveryFailed = errors.New("mail delivery failed")

	// ErrNoSnapshot reports that a seal has no stored manuscript text.
	ErrNoSnapshot = fmt.Errorf("no snapshot stored for seal: %w", ErrNotFound)
)

// Auth errors (invalid or malformed author token).
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
