// Package cli is the SealKeeper command-line client. It runs one
// subcommand per invocation:
//
//	sealkeeper [global flags] <command> [command flags]
//
// Author commands (seal, seals, share, shares, approve, revoke, dashboard,
// certificate, reply) need an access token; verify is public. Recipient
// commands (open, preview, request, redeem, progress, read, message) are
// addressed by the share token from the invitation link. receipts lists the
// local record of seals made from this machine.
package cli
