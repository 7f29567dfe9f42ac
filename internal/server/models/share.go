package models

import "time"

// Share is one recipient's access grant against a Seal. Shares are never
// deleted; revoked ones stay for audit.
type Share struct {
	ID     string
	SealID string

	// Token is the only handle the recipient holds.
	Token string

	RecipientEmail string
	RecipientName  string
	AuthorMessage  string

	Status Status

	SentAt          time.Time
	OpenedAt        *time.Time
	PreviewReadAt   *time.Time
	CodeRequestedAt *time.Time
	CodeProvidedAt  *time.Time
	FullAccessAt    *time.Time
	RevokedAt       *time.Time

	// AccessCode and CodeExpiresAt are set together and only while Status
	// is StatusCodeProvided.
	AccessCode         string
	CodeExpiresAt      *time.Time
	FailedCodeAttempts int

	CurrentPage int
	LastReadAt  *time.Time

	Messages []Message
}

func (s *Share) Opened() bool        { return s.OpenedAt != nil }
func (s *Share) PreviewRead() bool   { return s.PreviewReadAt != nil }
func (s *Share) CodeRequested() bool { return s.CodeRequestedAt != nil }
func (s *Share) CodeProvided() bool  { return s.CodeProvidedAt != nil }
func (s *Share) FullAccess() bool    { return s.FullAccessAt != nil }
func (s *Share) Revoked() bool       { return s.Status == StatusRevoked }

// HasCode reports whether an access code is currently issued.
func (s *Share) HasCode() bool {
	return s.AccessCode != ""
}

// CodeExpired reports whether the issued code is past its expiry at now.
// A share without a code is never expired.
func (s *Share) CodeExpired(now time.Time) bool {
	return s.HasCode() && s.CodeExpiresAt != nil && now.After(*s.CodeExpiresAt)
}

// CodeLocked reports whether failed attempts reached maxAttempts.
// maxAttempts <= 0 disables the lockout.
func (s *Share) CodeLocked(maxAttempts int) bool {
	return maxAttempts > 0 && s.FailedCodeAttempts >= maxAttempts
}

// CodeLive reports whether the issued code can still be redeemed.
func (s *Share) CodeLive(now time.Time, maxAttempts int) bool {
	return s.HasCode() && !s.CodeExpired(now) && !s.CodeLocked(maxAttempts)
}

// ClearCode drops the access code, its expiry and the attempt counter.
func (s *Share) ClearCode() {
	s.AccessCode = ""
	s.CodeExpiresAt = nil
	s.FailedCodeAttempts = 0
}

// Clone returns a deep copy so callers never alias stored state.
func (s *Share) Clone() *Share {
	if s == nil {
		return nil
	}
	c := *s
	c.OpenedAt = cloneTime(s.OpenedAt)
	c.PreviewReadAt = cloneTime(s.PreviewReadAt)
	c.CodeRequestedAt = cloneTime(s.CodeRequestedAt)
	c.CodeProvidedAt = cloneTime(s.CodeProvidedAt)
	c.FullAccessAt = cloneTime(s.FullAccessAt)
	c.RevokedAt = cloneTime(s.RevokedAt)
	c.CodeExpiresAt = cloneTime(s.CodeExpiresAt)
	c.LastReadAt = cloneTime(s.LastReadAt)
	if s.Messages != nil {
		c.Messages = append([]Message(nil), s.Messages...)
	}
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
