package cli

import (
	"context"

	"github.com/dmitrijs2005/sealkeeper/internal/client/repositories/receipts"
	"github.com/dmitrijs2005/sealkeeper/internal/filex"
	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
)

func (a *App) printSeal(s *pb.Seal) {
	a.printf("seal:        %s\n", s.GetId())
	a.printf("manuscript:  %s\n", s.GetManuscriptId())
	a.printf("title:       %s\n", s.GetTitle())
	a.printf("author:      %s\n", s.GetAuthor())
	a.printf("digest:      %s:%s\n", s.GetHashAlgorithm(), s.GetContentHash())
	a.printf("length:      %d bytes\n", s.GetContentLength())
	a.printf("sealed at:   %s\n", formatTimestamp(s.GetSealedAt()))
	a.printf("shares:      %d\n", len(s.GetShareIds()))
}

func (a *App) printShare(s *pb.Share) {
	a.printf("share:       %s\n", s.GetId())
	a.printf("seal:        %s\n", s.GetSealId())
	a.printf("token:       %s\n", s.GetToken())
	a.printf("recipient:   %s %s\n", s.GetRecipientName(), s.GetRecipientEmail())
	a.printf("status:      %s\n", s.GetStatus())
	a.printf("sent at:     %s\n", formatTimestamp(s.GetSentAt()))
	a.printf("opened at:   %s\n", formatTimestamp(s.GetOpenedAt()))
	if s.GetAccessCode() != "" {
		a.printf("access code: %s (expires %s)\n", s.GetAccessCode(), formatTimestamp(s.GetCodeExpiresAt()))
	}
	a.printf("page:        %d\n", s.GetCurrentPage())
	a.printMessages(s.GetMessages())
}

func (a *App) printMessages(msgs []*pb.Message) {
	for _, m := range msgs {
		from := m.GetSender()
		if m.GetSenderName() != "" {
			from = m.GetSenderName()
		}
		a.printf("  [%s] %s: %s\n", formatTimestamp(m.GetCreatedAt()), from, m.GetBody())
	}
}

func (a *App) seal(ctx context.Context, args []string) error {
	fs := newFlagSet("seal")
	manuscriptID := fs.String("m", "", "manuscript id")
	title := fs.String("title", "", "manuscript title")
	author := fs.String("author", "", "author name")
	file := fs.String("f", "", "manuscript file, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("m", *manuscriptID, "f", *file); err != nil {
		return err
	}

	content, err := readContent(*file, a.stdin)
	if err != nil {
		return err
	}

	s, err := a.api.SealManuscript(ctx, *manuscriptID, *title, *author, content)
	if err != nil {
		return err
	}
	a.printSeal(s)

	store, err := a.receiptStore(ctx)
	if err != nil {
		return err
	}
	return store.Save(ctx, &receipts.Receipt{
		SealID:       s.GetId(),
		ManuscriptID: s.GetManuscriptId(),
		Title:        s.GetTitle(),
		Author:       s.GetAuthor(),
		Digest:       s.GetContentHash(),
		Algorithm:    s.GetHashAlgorithm(),
		SealedAt:     s.GetSealedAt().AsTime(),
		RecordedAt:   a.now().UTC(),
	})
}

func (a *App) seals(ctx context.Context, args []string) error {
	fs := newFlagSet("seals")
	id := fs.String("id", "", "show one seal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id != "" {
		s, err := a.api.GetSeal(ctx, *id)
		if err != nil {
			return err
		}
		a.printSeal(s)
		return nil
	}

	list, err := a.api.ListSeals(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("no seals\n")
		return nil
	}
	for _, s := range list {
		a.printf("%s  %s  %q  %s\n", s.GetId(), formatTimestamp(s.GetSealedAt()), s.GetTitle(), s.GetManuscriptId())
	}
	return nil
}

func (a *App) share(ctx context.Context, args []string) error {
	fs := newFlagSet("share")
	sealID := fs.String("seal", "", "seal id")
	email := fs.String("email", "", "recipient email")
	name := fs.String("name", "", "recipient name")
	msg := fs.String("msg", "", "personal message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("seal", *sealID, "email", *email); err != nil {
		return err
	}

	resp, err := a.api.CreateShare(ctx, *sealID, *email, *name, *msg)
	if err != nil {
		return err
	}
	a.printShare(resp.GetShare())
	if resp.GetDeliveryError() != "" {
		a.printf("warning: invitation was not delivered: %s\n", resp.GetDeliveryError())
	} else if resp.GetMessageId() != "" {
		a.printf("invitation sent: %s\n", resp.GetMessageId())
	}
	return nil
}

func (a *App) shares(ctx context.Context, args []string) error {
	fs := newFlagSet("shares")
	sealID := fs.String("seal", "", "list shares of a seal")
	id := fs.String("id", "", "show one share")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id != "" {
		s, err := a.api.GetShare(ctx, *id)
		if err != nil {
			return err
		}
		a.printShare(s)
		return nil
	}

	if err := required("seal", *sealID); err != nil {
		return err
	}
	list, err := a.api.ListShares(ctx, *sealID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("no shares\n")
		return nil
	}
	for _, s := range list {
		a.printf("%s  %-15s  %s  page %d\n", s.GetId(), s.GetStatus(), s.GetRecipientEmail(), s.GetCurrentPage())
	}
	return nil
}

func (a *App) approve(ctx context.Context, args []string) error {
	fs := newFlagSet("approve")
	id := fs.String("id", "", "share id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("id", *id); err != nil {
		return err
	}

	s, err := a.api.Approve(ctx, *id)
	if err != nil {
		return err
	}
	a.printf("access code: %s\n", s.GetAccessCode())
	a.printf("expires at:  %s\n", formatTimestamp(s.GetCodeExpiresAt()))
	return nil
}

func (a *App) revoke(ctx context.Context, args []string) error {
	fs := newFlagSet("revoke")
	id := fs.String("id", "", "share id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("id", *id); err != nil {
		return err
	}

	s, err := a.api.Revoke(ctx, *id)
	if err != nil {
		return err
	}
	a.printf("share %s revoked at %s\n", s.GetId(), formatTimestamp(s.GetRevokedAt()))
	return nil
}

func (a *App) dashboard(ctx context.Context, args []string) error {
	fs := newFlagSet("dashboard")
	sealID := fs.String("seal", "", "seal id")
	html := fs.Bool("html", false, "render as HTML")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("seal", *sealID); err != nil {
		return err
	}

	format := "text"
	if *html {
		format = "html"
	}
	resp, err := a.api.Dashboard(ctx, *sealID, format)
	if err != nil {
		return err
	}
	a.printf("%s\n", resp.GetRendered())
	return nil
}

func (a *App) certificate(ctx context.Context, args []string) error {
	fs := newFlagSet("certificate")
	sealID := fs.String("seal", "", "seal id")
	outDir := fs.String("o", "certificates", "output directory for the HTML certificate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("seal", *sealID); err != nil {
		return err
	}

	resp, err := a.api.GetCertificate(ctx, *sealID)
	if err != nil {
		return err
	}
	a.printf("%s\n", resp.GetText())

	path, err := filex.WriteFile(*outDir, *sealID+".html", []byte(resp.GetHtml()))
	if err != nil {
		return err
	}
	a.printf("certificate written to %s\n", path)
	return nil
}

func (a *App) verify(ctx context.Context, args []string) error {
	fs := newFlagSet("verify")
	sealID := fs.String("seal", "", "seal id")
	file := fs.String("f", "", "file to check, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("seal", *sealID, "f", *file); err != nil {
		return err
	}

	content, err := readContent(*file, a.stdin)
	if err != nil {
		return err
	}
	resp, err := a.api.VerifyContent(ctx, *sealID, content)
	if err != nil {
		return err
	}

	a.printf("sealed:   %s:%s\n", resp.GetAlgorithm(), resp.GetExpectedDigest())
	a.printf("provided: %s:%s\n", resp.GetAlgorithm(), resp.GetDigest())
	if !resp.GetMatch() {
		a.printf("MISMATCH\n")
		return ErrMismatch
	}
	a.printf("MATCH\n")
	return nil
}

func (a *App) reply(ctx context.Context, args []string) error {
	fs := newFlagSet("reply")
	id := fs.String("id", "", "share id")
	body := fs.String("body", "", "message text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("id", *id, "body", *body); err != nil {
		return err
	}

	m, err := a.api.PostAuthorMessage(ctx, *id, *body)
	if err != nil {
		return err
	}
	a.printf("message %s posted\n", m.GetId())
	return nil
}

func (a *App) listReceipts(ctx context.Context, _ []string) error {
	store, err := a.receiptStore(ctx)
	if err != nil {
		return err
	}
	list, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("no receipts\n")
		return nil
	}
	for _, r := range list {
		a.printf("%s  %s  %q  %s:%s\n", r.SealID, formatTime(&r.SealedAt), r.Title, r.Algorithm, r.Digest)
	}
	return nil
}

