package dashboard

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func at(h int) *time.Time {
	v := t0.Add(time.Duration(h) * time.Hour)
	return &v
}

func fixture() (*models.Seal, []*models.Share) {
	seal := &models.Seal{ID: "seal-1", Title: "Moonrise", Author: "Jane", ContentHash: "abcd", HashAlgorithm: "sha256", SealedAt: t0}

	sent := &models.Share{ID: "a", RecipientName: "Sent Only", RecipientEmail: "a@x.y", Status: models.StatusSent, SentAt: t0}
	waiting := &models.Share{
		ID: "b", RecipientName: "Waiting", RecipientEmail: "b@x.y", Status: models.StatusCodeRequested,
		SentAt: t0, OpenedAt: at(1), CodeRequestedAt: at(2),
	}
	reading := &models.Share{
		ID: "c", RecipientName: "Reader", RecipientEmail: "c@x.y", Status: models.StatusReading,
		SentAt: t0, OpenedAt: at(1), PreviewReadAt: at(2), CodeRequestedAt: at(3), CodeProvidedAt: at(4),
		FullAccessAt: at(5), LastReadAt: at(6), CurrentPage: 42,
		Messages: []models.Message{{ID: "m1", Sender: models.SenderRecipient, SenderName: "Reader", Body: "Loved **chapter 3**\n<script>x</script>", CreatedAt: *at(6)}},
	}
	revoked := &models.Share{
		ID: "d", RecipientName: "Gone", RecipientEmail: "d@x.y", Status: models.StatusRevoked,
		SentAt: t0, OpenedAt: at(1), RevokedAt: at(3),
	}
	return seal, []*models.Share{sent, waiting, reading, revoked}
}

func TestBuild_Summary(t *testing.T) {
	v := Build(fixture())

	assert.Equal(t, Summary{Shares: 4, Opened: 3, AwaitingApproval: 1, FullAccess: 1, Revoked: 1}, v.Summary)
	require.Len(t, v.Shares, 4)
	assert.True(t, v.Shares[1].NeedsApproval)
	assert.Equal(t, "Revoked", v.Shares[3].Badge.Label)
}

func TestBuild_EventsOrderedAndUnsetOmitted(t *testing.T) {
	v := Build(fixture())

	names := func(es []Event) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Sent"}, names(v.Shares[0].Events))
	assert.Equal(t, []string{"Sent", "Opened", "Requested code"}, names(v.Shares[1].Events))
	assert.Equal(t, []string{"Sent", "Opened", "Preview read", "Requested code", "Code provided", "Full access", "Last read"},
		names(v.Shares[2].Events))
	assert.Equal(t, []string{"Sent", "Opened", "Revoked"}, names(v.Shares[3].Events))
}

func TestRenderHTML(t *testing.T) {
	out, err := Build(fixture()).RenderHTML()
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<strong>chapter 3</strong>")
	assert.NotContains(t, s, "<script>x</script>")
	assert.Contains(t, s, "Wants access")
	assert.Contains(t, s, "Awaiting your approval")
	assert.Contains(t, s, "2026-03-01 15:00 UTC")
}

func TestRenderText(t *testing.T) {
	out := Build(fixture()).RenderText()

	assert.Contains(t, out, "Moonrise by Jane")
	assert.Contains(t, out, "shares: 4  opened: 3  awaiting approval: 1  full access: 1  revoked: 1")
	assert.Contains(t, out, "[Reading] Reader <c@x.y>")
	assert.Contains(t, out, "page 42")
	assert.Contains(t, out, "> Reader (2026-03-01 15:00 UTC): Loved **chapter 3**")
}

func TestBadgeFor_Unknown(t *testing.T) {
	assert.Equal(t, "WHATEVER", BadgeFor("WHATEVER").Label)
}

func TestMarkdown(t *testing.T) {
	h, err := Markdown("*hi*")
	require.NoError(t, err)
	assert.Equal(t, "<p><em>hi</em></p>\n", string(h))
}
