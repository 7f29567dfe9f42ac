// Package common contains shared constants and sentinel errors used across
// SealKeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the author
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ShareTokenLength is the number of characters in a recipient share token.
const ShareTokenLength = 32

// AccessCodeDigits is the number of decimal digits in an access code.
const AccessCodeDigits = 6
