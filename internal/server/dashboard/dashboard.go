// Package dashboard builds the author's read-only view of a seal and its
// shares, and renders it as HTML or plain text.
package dashboard

import (
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
)

// Summary counts shares of one seal.
type Summary struct {
	Shares           int
	Opened           int
	AwaitingApproval int
	FullAccess       int
	Revoked          int
}

// Badge is the short status label shown next to a share.
type Badge struct {
	Label string
	Color string
}

// Event is one recorded timestamp of a share.
type Event struct {
	Name string
	At   time.Time
}

// ShareView is one row of the dashboard. The access code itself is never
// part of the view.
type ShareView struct {
	ID             string
	RecipientName  string
	RecipientEmail string
	Status         models.Status
	Badge          Badge
	Events         []Event
	CurrentPage    int
	HasCode        bool
	CodeExpiresAt  *time.Time
	NeedsApproval  bool
	Messages       []models.Message
}

// View is the dashboard of one seal.
type View struct {
	SealID        string
	Title         string
	Author        string
	SealedAt      time.Time
	ContentHash   string
	HashAlgorithm string
	Summary       Summary
	Shares        []ShareView
}

var badges = map[models.Status]Badge{
	models.StatusSent:          {"Sent", "#6b7280"},
	models.StatusOpened:        {"Opened", "#3b82f6"},
	models.StatusCodeRequested: {"Wants access", "#f59e0b"},
	models.StatusCodeProvided:  {"Code sent", "#8b5cf6"},
	models.StatusFullAccess:    {"Unlocked", "#22c55e"},
	models.StatusReading:       {"Reading", "#16a34a"},
	models.StatusRevoked:       {"Revoked", "#ef4444"},
}

// BadgeFor returns the badge of a status.
func BadgeFor(s models.Status) Badge {
	if b, ok := badges[s]; ok {
		return b
	}
	return Badge{Label: string(s), Color: "#6b7280"}
}

// Build assembles the view. Shares are shown in the given order.
func Build(seal *models.Seal, shares []*models.Share) *View {
	v := &View{
		SealID:        seal.ID,
		Title:         seal.Title,
		Author:        seal.Author,
		SealedAt:      seal.SealedAt,
		ContentHash:   seal.ContentHash,
		HashAlgorithm: seal.HashAlgorithm,
	}

	for _, s := range shares {
		v.Summary.Shares++
		if s.Opened() {
			v.Summary.Opened++
		}
		if s.FullAccess() {
			v.Summary.FullAccess++
		}
		if s.Status == models.StatusCodeRequested {
			v.Summary.AwaitingApproval++
		}
		if s.Revoked() {
			v.Summary.Revoked++
		}
		v.Shares = append(v.Shares, buildShare(s))
	}
	return v
}

func buildShare(s *models.Share) ShareView {
	return ShareView{
		ID:             s.ID,
		RecipientName:  s.RecipientName,
		RecipientEmail: s.RecipientEmail,
		Status:         s.Status,
		Badge:          BadgeFor(s.Status),
		Events:         events(s),
		CurrentPage:    s.CurrentPage,
		HasCode:        s.HasCode(),
		CodeExpiresAt:  s.CodeExpiresAt,
		NeedsApproval:  s.Status == models.StatusCodeRequested,
		Messages:       append([]models.Message(nil), s.Messages...),
	}
}

// events lists set timestamps in lifecycle order, skipping unset ones.
func events(s *models.Share) []Event {
	sent := s.SentAt
	all := []struct {
		name string
		at   *time.Time
	}{
		{"Sent", &sent},
		{"Opened", s.OpenedAt},
		{"Preview read", s.PreviewReadAt},
		{"Requested code", s.CodeRequestedAt},
		{"Code provided", s.CodeProvidedAt},
		{"Full access", s.FullAccessAt},
		{"Last read", s.LastReadAt},
		{"Revoked", s.RevokedAt},
	}

	var out []Event
	for _, e := range all {
		if e.at == nil || e.at.IsZero() {
			continue
		}
		out = append(out, Event{Name: e.name, At: *e.at})
	}
	return out
}
