// Package models defines server-side data models persisted by repositories.
package models

import "time"

// Seal is one immutable fingerprint of a manuscript snapshot. Nothing in a
// Seal changes after creation except that ShareIDs grows as shares are
// issued against it.
type Seal struct {
	ID            string
	ManuscriptID  string
	Title         string
	Author        string
	ContentHash   string
	HashAlgorithm string
	ContentLength int64
	SnapshotKey   string
	SealedAt      time.Time

	// ShareIDs lists the seal's shares in creation order.
	ShareIDs []string
}

// HasSnapshot reports whether the sealed text was archived.
func (s *Seal) HasSnapshot() bool {
	return s.SnapshotKey != ""
}

// Clone returns a copy that does not share the ShareIDs backing array.
func (s *Seal) Clone() *Seal {
	if s == nil {
		return nil
	}
	c := *s
	c.ShareIDs = append([]string{}, s.ShareIDs...)
	return &c
}
