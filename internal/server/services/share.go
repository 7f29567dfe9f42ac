package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	"github.com/dmitrijs2005/sealkeeper/internal/server/dashboard"
	sm "github.com/dmitrijs2005/sealkeeper/internal/server/mail"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sealkeeper/internal/server/snapshots"
	"github.com/dmitrijs2005/sealkeeper/internal/shared"
	"github.com/google/uuid"
)

// ShareSettings tunes the share state machine.
type ShareSettings struct {
	// CodeValidity is how long an issued access code can be redeemed.
	CodeValidity time.Duration
	// MaxCodeAttempts locks a code after that many wrong guesses; 0 disables.
	MaxCodeAttempts int
	// PreviewRunes is the length of the free preview.
	PreviewRunes int
	// PresignTTL is the lifetime of manuscript download URLs.
	PresignTTL time.Duration
	// PublicBaseURL prefixes the read links in invitations.
	PublicBaseURL string
}

// CreateShareResult carries the new share and the outcome of the invitation
// mail. A delivery failure does not undo the share.
type CreateShareResult struct {
	Share         *models.Share
	MessageID     string
	DeliveryError error
}

// RecipientView is what a token holder may see. It never includes the
// access code or internal ids.
type RecipientView struct {
	Title         string
	Author        string
	SealedAt      time.Time
	ContentHash   string
	HashAlgorithm string
	RecipientName string
	AuthorMessage string
	Status        models.Status
	OpenedAt      *time.Time
	PreviewReadAt *time.Time
	CodeExpiresAt *time.Time
	CurrentPage   int
	LastReadAt    *time.Time
	Messages      []models.Message
}

// ShareManager issues shares and moves them through the disclosure state
// machine. Every mutation of one share is serialized.
type ShareManager struct {
	repos    repomanager.RepositoryManager
	mailer   sm.Mailer
	store    snapshots.Store
	logger   logging.Logger
	settings ShareSettings
	locks    *keyedMutex
	now      func() time.Time
}

// NewShareManager builds a manager. store may be nil when snapshots are
// disabled; previews and manuscript URLs then report common.ErrNoSnapshot.
func NewShareManager(repos repomanager.RepositoryManager, mailer sm.Mailer, store snapshots.Store, l logging.Logger, s ShareSettings) *ShareManager {
	return &ShareManager{
		repos:    repos,
		mailer:   mailer,
		store:    store,
		logger:   l.With("module", "shares"),
		settings: s,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", common.ErrInvalidEmail
	}
	return email, nil
}

// CreateShare issues a new share against an existing seal and mails the
// invitation.
func (m *ShareManager) CreateShare(ctx context.Context, sealID, email, name, message string) (*CreateShareResult, error) {
	email, err := validateEmail(email)
	if err != nil {
		return nil, err
	}

	repos := m.repos.Repos()
	seal, err := repos.Seals.GetByID(ctx, sealID)
	if err != nil {
		return nil, err
	}

	token, err := shared.MakeRandToken(common.ShareTokenLength)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	share := &models.Share{
		ID:             uuid.NewString(),
		SealID:         seal.ID,
		Token:          token,
		RecipientEmail: email,
		RecipientName:  strings.TrimSpace(name),
		AuthorMessage:  message,
		Status:         models.StatusSent,
		SentAt:         m.now().UTC(),
	}
	if err := repos.Shares.Create(ctx, share); err != nil {
		return nil, err
	}
	m.logger.Info(ctx, "share created", "share_id", share.ID, "seal_id", seal.ID)

	res := &CreateShareResult{Share: share}
	res.MessageID, res.DeliveryError = m.sendInvitation(ctx, seal, share)
	if res.DeliveryError != nil {
		m.logger.Warn(ctx, "invitation not delivered", "share_id", share.ID, "error", res.DeliveryError.Error())
	}
	return res, nil
}

func (m *ShareManager) sendInvitation(ctx context.Context, seal *models.Seal, share *models.Share) (string, error) {
	subject, body, err := sm.Invitation{
		RecipientName: share.RecipientName,
		Author:        seal.Author,
		Title:         seal.Title,
		AuthorMessage: share.AuthorMessage,
		BaseURL:       m.settings.PublicBaseURL,
		Token:         share.Token,
	}.Render()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDeliveryFailed, err)
	}

	id, err := m.mailer.Send(ctx, share.RecipientEmail, subject, body)
	if err != nil {
		if !errors.Is(err, common.ErrDeliveryFailed) {
			err = fmt.Errorf("%w: %v", common.ErrDeliveryFailed, err)
		}
		return "", err
	}
	return id, nil
}

// mutation is one step applied to a share under its lock. It reports
// whether the share must be written back. A written change is committed
// even when the step also returns an error.
type mutation func(ctx context.Context, r repomanager.Repositories, s *models.Share, now time.Time) (bool, error)

// mutate locks the share id, re-reads the row for update inside a
// transaction and applies fn.
func (m *ShareManager) mutate(ctx context.Context, shareID string, fn mutation) (*models.Share, error) {
	unlock := m.locks.Lock(shareID)
	defer unlock()

	var (
		out   *models.Share
		opErr error
	)
	err := m.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		s, err := r.Shares.GetByIDForUpdate(ctx, shareID)
		if err != nil {
			return err
		}
		changed, err := fn(ctx, r, s, m.now().UTC())
		opErr = err
		if changed {
			if err := r.Shares.Update(ctx, s); err != nil {
				return err
			}
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return out, nil
}

func (m *ShareManager) mutateByToken(ctx context.Context, token string, fn mutation) (*models.Share, error) {
	s, err := m.repos.Repos().Shares.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return m.mutate(ctx, s.ID, fn)
}

// step consults the transition table and moves s when allowed.
func step(s *models.Share, ev models.Event) (models.Outcome, error) {
	to, out := models.Transition(s.Status, ev)
	switch out {
	case models.Reject:
		if s.Revoked() {
			return out, common.ErrShareRevoked
		}
		return out, fmt.Errorf("%w: %s not allowed in %s", common.ErrInvalidState, ev, s.Status)
	case models.Move:
		s.Status = to
	}
	return out, nil
}

// allowed is step without the move.
func allowed(s *models.Share, ev models.Event) error {
	probe := models.Share{Status: s.Status}
	_, err := step(&probe, ev)
	return err
}

func setOnce(dst **time.Time, now time.Time) {
	if *dst == nil {
		t := now
		*dst = &t
	}
}

// LogOpen records the first time the recipient opened the link.
func (m *ShareManager) LogOpen(ctx context.Context, token string) (*models.Share, error) {
	return m.mutateByToken(ctx, token, func(_ context.Context, _ repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
		out, err := step(s, models.EventOpen)
		if err != nil || out == models.Ignore {
			return false, err
		}
		setOnce(&s.OpenedAt, now)
		return true, nil
	})
}

// LogPreviewRead records that the preview was read. The status does not
// change; PREVIEW_READ is tracked by timestamp only.
func (m *ShareManager) LogPreviewRead(ctx context.Context, token string) (*models.Share, error) {
	return m.mutateByToken(ctx, token, func(_ context.Context, _ repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
		if _, err := step(s, models.EventPreviewRead); err != nil {
			return false, err
		}
		if s.PreviewRead() {
			return false, nil
		}
		setOnce(&s.PreviewReadAt, now)
		return true, nil
	})
}

// RequestAccess asks the author for a code. From CODE_PROVIDED it is only
// accepted once the code is dead (expired or locked), which clears it.
func (m *ShareManager) RequestAccess(ctx context.Context, token string) (*models.Share, error) {
	return m.mutateByToken(ctx, token, func(_ context.Context, _ repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
		if s.Status == models.StatusCodeProvided && s.CodeLive(now, m.settings.MaxCodeAttempts) {
			return false, common.ErrCodeLive
		}
		from := s.Status
		out, err := step(s, models.EventRequestAccess)
		if err != nil || out == models.Ignore {
			return false, err
		}
		if from == models.StatusCodeProvided {
			s.ClearCode()
		}
		setOnce(&s.CodeRequestedAt, now)
		return true, nil
	})
}

// Approve issues a fresh access code. It refuses to replace a code the
// recipient can still redeem.
func (m *ShareManager) Approve(ctx context.Context, shareID string) (*models.Share, error) {
	s, err := m.mutate(ctx, shareID, func(_ context.Context, _ repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
		if s.Status == models.StatusCodeProvided && s.CodeLive(now, m.settings.MaxCodeAttempts) {
			return false, common.ErrCodeLive
		}
		if err := allowed(s, models.EventApprove); err != nil {
			return false, err
		}

		code, err := shared.MakeRandDigits(common.AccessCodeDigits)
		if err != nil {
			return false, fmt.Errorf("generate code: %w", err)
		}

		_, _ = step(s, models.EventApprove)
		expires := now.Add(m.settings.CodeValidity)
		s.AccessCode = code
		s.CodeExpiresAt = &expires
		s.FailedCodeAttempts = 0
		setOnce(&s.CodeProvidedAt, now)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	m.logger.Info(ctx, "access code issued", "share_id", s.ID, "expires_at", s.CodeExpiresAt.Format(time.RFC3339))
	return s, nil
}

// Redeem exchanges the access code for full access. Rejections leave the
// status and the code as they were; a wrong code counts towards lockout.
func (m *ShareManager) Redeem(ctx context.Context, token, code string) (*models.Share, error) {
	return m.mutateByToken(ctx, token, func(ctx context.Context, _ repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
		if err := allowed(s, models.EventRedeem); err != nil {
			return false, err
		}
		if !s.HasCode() {
			return false, fmt.Errorf("%w: no access code issued", common.ErrInvalidState)
		}
		if s.CodeLocked(m.settings.MaxCodeAttempts) {
			return false, common.ErrCodeLocked
		}
		if s.CodeExpired(now) {
			return false, common.ErrCodeExpired
		}
		if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(code)), []byte(s.AccessCode)) != 1 {
			s.FailedCodeAttempts++
			m.logger.Warn(ctx, "wrong access code", "share_id", s.ID, "attempts", s.FailedCodeAttempts)
			return true, common.ErrCodeMismatch
		}

		_, _ = step(s, models.EventRedeem)
		setOnce(&s.FullAccessAt, now)
		s.ClearCode()
		m.logger.Info(ctx, "full access granted", "share_id", s.ID)
		return true, nil
	})
}

// TrackProgress records the reader's current page.
func (m *ShareManager) TrackProgress(ctx context.Context, token string, page int) (*models.Share, error) {
	if page < 0 {
		return nil, common.ErrNegativePage
	}
	return m.mutateByToken(ctx, token, func(_ context.Context, _ repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
		if _, err := step(s, models.EventProgress); err != nil {
			return false, err
		}
		s.CurrentPage = page
		t := now
		s.LastReadAt = &t
		return true, nil
	})
}

// Revoke ends the share for good. Revoking twice is a no-op.
func (m *ShareManager) Revoke(ctx context.Context, shareID string) (*models.Share, error) {
	return m.mutate(ctx, shareID, func(ctx context.Context, _ repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
		out, err := step(s, models.EventRevoke)
		if err != nil || out == models.Ignore {
			return false, err
		}
		setOnce(&s.RevokedAt, now)
		s.ClearCode()
		m.logger.Info(ctx, "share revoked", "share_id", s.ID)
		return true, nil
	})
}

// PostMessage appends a recipient message to the share's thread. name
// defaults to the recipient name given at share creation.
func (m *ShareManager) PostMessage(ctx context.Context, token, name, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, common.ErrEmptyMessage
	}
	var msg *models.Message
	_, err := m.mutateByToken(ctx, token, func(ctx context.Context, r repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
		if s.Revoked() {
			return false, common.ErrShareRevoked
		}
		if strings.TrimSpace(name) == "" {
			name = s.RecipientName
		}
		msg = &models.Message{
			ID:          uuid.NewString(),
			ShareID:     s.ID,
			Sender:      models.SenderRecipient,
			SenderName:  strings.TrimSpace(name),
			SenderEmail: s.RecipientEmail,
			Body:        body,
			CreatedAt:   now,
		}
		return false, r.Shares.AppendMessage(ctx, msg)
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// PostAuthorMessage appends an author reply. Revoked shares still accept
// replies so the author can explain the revocation.
func (m *ShareManager) PostAuthorMessage(ctx context.Context, shareID, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, common.ErrEmptyMessage
	}
	var msg *models.Message
	_, err := m.mutate(ctx, shareID, func(ctx context.Context, r repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
		seal, err := r.Seals.GetByID(ctx, s.SealID)
		if err != nil {
			return false, err
		}
		msg = &models.Message{
			ID:         uuid.NewString(),
			ShareID:    s.ID,
			Sender:     models.SenderAuthor,
			SenderName: seal.Author,
			Body:       body,
			CreatedAt:  now,
		}
		return false, r.Shares.AppendMessage(ctx, msg)
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// GetShare returns one share, code included, for the author.
func (m *ShareManager) GetShare(ctx context.Context, shareID string) (*models.Share, error) {
	return m.repos.Repos().Shares.GetByID(ctx, shareID)
}

// ListShares returns the seal's shares in creation order.
func (m *ShareManager) ListShares(ctx context.Context, sealID string) ([]*models.Share, error) {
	repos := m.repos.Repos()
	if _, err := repos.Seals.GetByID(ctx, sealID); err != nil {
		return nil, err
	}
	return repos.Shares.ListBySeal(ctx, sealID)
}

// Dashboard builds the tracking view of one seal.
func (m *ShareManager) Dashboard(ctx context.Context, sealID string) (*dashboard.View, error) {
	repos := m.repos.Repos()
	seal, err := repos.Seals.GetByID(ctx, sealID)
	if err != nil {
		return nil, err
	}
	shares, err := repos.Shares.ListBySeal(ctx, sealID)
	if err != nil {
		return nil, err
	}
	return dashboard.Build(seal, shares), nil
}

// recipientShare resolves a token to a live share and its seal.
func (m *ShareManager) recipientShare(ctx context.Context, token string) (*models.Share, *models.Seal, error) {
	repos := m.repos.Repos()
	s, err := repos.Shares.GetByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if s.Revoked() {
		return nil, nil, common.ErrShareRevoked
	}
	seal, err := repos.Seals.GetByID(ctx, s.SealID)
	if err != nil {
		return nil, nil, err
	}
	return s, seal, nil
}

// RecipientView is the read page data for a token.
func (m *ShareManager) RecipientView(ctx context.Context, token string) (*RecipientView, error) {
	s, seal, err := m.recipientShare(ctx, token)
	if err != nil {
		return nil, err
	}
	return &RecipientView{
		Title:         seal.Title,
		Author:        seal.Author,
		SealedAt:      seal.SealedAt,
		ContentHash:   seal.ContentHash,
		HashAlgorithm: seal.HashAlgorithm,
		RecipientName: s.RecipientName,
		AuthorMessage: s.AuthorMessage,
		Status:        s.Status,
		OpenedAt:      s.OpenedAt,
		PreviewReadAt: s.PreviewReadAt,
		CodeExpiresAt: s.CodeExpiresAt,
		CurrentPage:   s.CurrentPage,
		LastReadAt:    s.LastReadAt,
		Messages:      s.Messages,
	}, nil
}

func (m *ShareManager) snapshot(ctx context.Context, seal *models.Seal) ([]byte, error) {
	if m.store == nil || !seal.HasSnapshot() {
		return nil, common.ErrNoSnapshot
	}
	return m.store.Get(ctx, seal.SnapshotKey)
}

// Preview returns the opening of the sealed text. The link must have been
// opened first.
func (m *ShareManager) Preview(ctx context.Context, token string) (string, error) {
	s, seal, err := m.recipientShare(ctx, token)
	if err != nil {
		return "", err
	}
	if !s.Opened() {
		return "", fmt.Errorf("%w: share not opened yet", common.ErrInvalidState)
	}
	content, err := m.snapshot(ctx, seal)
	if err != nil {
		return "", err
	}
	return firstRunes(string(content), m.settings.PreviewRunes), nil
}

func firstRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// ManuscriptURL returns a time-limited download URL of the sealed text.
// Only shares with full access get one.
func (m *ShareManager) ManuscriptURL(ctx context.Context, token string) (string, time.Time, error) {
	s, seal, err := m.recipientShare(ctx, token)
	if err != nil {
		return "", time.Time{}, err
	}
	if !s.Status.HasFullAccess() {
		return "", time.Time{}, fmt.Errorf("%w: full access required", common.ErrInvalidState)
	}
	if m.store == nil || !seal.HasSnapshot() {
		return "", time.Time{}, common.ErrNoSnapshot
	}
	expires := m.now().UTC().Add(m.settings.PresignTTL)
	u, err := m.store.PresignGet(ctx, seal.SnapshotKey, m.settings.PresignTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	return u, expires, nil
}

// SweepExpiredCodes moves shares whose code expired back to
// CODE_REQUESTED and clears the code. It returns how many moved.
func (m *ShareManager) SweepExpiredCodes(ctx context.Context) (int, error) {
	ids, err := m.repos.Repos().Shares.ListExpiredCodes(ctx, m.now().UTC())
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, id := range ids {
		var changed bool
		_, err := m.mutate(ctx, id, func(_ context.Context, _ repomanager.Repositories, s *models.Share, now time.Time) (bool, error) {
			if s.Status != models.StatusCodeProvided || !s.CodeExpired(now) {
				return false, nil
			}
			if _, err := step(s, models.EventCodeDead); err != nil {
				return false, err
			}
			s.ClearCode()
			changed = true
			return true, nil
		})
		if err != nil {
			return moved, err
		}
		if changed {
			moved++
		}
	}
	return moved, nil
}
