// Package mail delivers share invitations to recipients.
package mail

import "context"

// Mailer sends one HTML message and returns the provider's message id.
// Implementations do not retry.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}
