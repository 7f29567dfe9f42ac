package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/cryptox"
	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sealkeeper/internal/server/snapshots"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return "msg-1", nil
}

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type harness struct {
	seals  *SealRegistry
	shares *ShareManager
	mailer *fakeMailer
	clock  *testClock
	repos  *repomanager.MemoryRepositoryManager
}

const codeTTL = 30 * 24 * time.Hour

func newHarness(t *testing.T) *harness {
	t.Helper()

	repos := repomanager.NewMemoryRepositoryManager()
	store := snapshots.NewMemoryStore()
	mailer := &fakeMailer{}
	clock := &testClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	hasher, err := cryptox.NewHasher(cryptox.AlgorithmSHA256)
	require.NoError(t, err)

	seals := NewSealRegistry(repos, hasher, store, logging.Discard())
	seals.now = clock.now

	shares := NewShareManager(repos, mailer, store, logging.Discard(), ShareSettings{
		CodeValidity:    codeTTL,
		MaxCodeAttempts: 5,
		PreviewRunes:    10,
		PresignTTL:      15 * time.Minute,
		PublicBaseURL:   "https://sealkeeper.test",
	})
	shares.now = clock.now

	return &harness{seals: seals, shares: shares, mailer: mailer, clock: clock, repos: repos}
}

func (h *harness) seal(t *testing.T) *models.Seal {
	t.Helper()
	s, err := h.seals.Seal(context.Background(), "ms-1", "Moonrise", "It was midnight. The moon rose slowly.", "Jane Writer")
	require.NoError(t, err)
	return s
}

func (h *harness) share(t *testing.T) *models.Share {
	t.Helper()
	seal := h.seal(t)
	res, err := h.shares.CreateShare(context.Background(), seal.ID, "agent@lit.com", "J. Agent", "Please consider")
	require.NoError(t, err)
	require.NoError(t, res.DeliveryError)
	return res.Share
}

// approved returns a share in CODE_PROVIDED and its code.
func (h *harness) approved(t *testing.T) (*models.Share, string) {
	t.Helper()
	ctx := context.Background()
	s := h.share(t)
	_, err := h.shares.LogOpen(ctx, s.Token)
	require.NoError(t, err)
	_, err = h.shares.RequestAccess(ctx, s.Token)
	require.NoError(t, err)
	s, err = h.shares.Approve(ctx, s.ID)
	require.NoError(t, err)
	return s, s.AccessCode
}

func wrongCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}

var errBoom = errors.New("boom")
