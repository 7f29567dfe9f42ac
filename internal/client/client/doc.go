// Package client contains the CLI's building blocks: a gRPC client of the
// SealKeeper service that injects the author token and maps status codes to
// sentinel errors, and the bootstrap of the local receipts database.
//
// Callers match failures with errors.Is against ErrUnavailable,
// ErrUnauthorized, ErrAccessDenied or the common taxonomy errors
// (common.ErrNotFound, common.ErrInvalidState, common.ErrValidation).
package client
