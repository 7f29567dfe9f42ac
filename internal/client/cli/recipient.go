package cli

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
)

// tokenFlag parses a command whose only required flag is -token.
func tokenFlag(name string, args []string) (string, error) {
	fs := newFlagSet(name)
	token := fs.String("token", "", "share token")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if err := required("token", *token); err != nil {
		return "", err
	}
	return *token, nil
}

func (a *App) printStatus(s *pb.StatusResponse) {
	a.printf("status: %s\n", s.GetStatus())
	if s.GetCodeExpiresAt() != nil {
		a.printf("code expires at: %s\n", formatTimestamp(s.GetCodeExpiresAt()))
	}
}

func (a *App) open(ctx context.Context, args []string) error {
	token, err := tokenFlag("open", args)
	if err != nil {
		return err
	}

	v, err := a.api.OpenShare(ctx, token)
	if err != nil {
		return err
	}
	if v.GetRecipientName() != "" {
		a.printf("Dear %s,\n\n", v.GetRecipientName())
	}
	if v.GetAuthorMessage() != "" {
		a.printf("%s\n\n", v.GetAuthorMessage())
	}
	a.printf("title:     %s\n", v.GetTitle())
	a.printf("author:    %s\n", v.GetAuthor())
	a.printf("sealed at: %s\n", formatTimestamp(v.GetSealedAt()))
	a.printf("digest:    %s:%s\n", v.GetHashAlgorithm(), v.GetContentHash())
	a.printf("status:    %s\n", v.GetStatus())
	if v.GetCurrentPage() > 0 {
		a.printf("page:      %d\n", v.GetCurrentPage())
	}
	a.printMessages(v.GetMessages())
	return nil
}

func (a *App) preview(ctx context.Context, args []string) error {
	token, err := tokenFlag("preview", args)
	if err != nil {
		return err
	}

	text, err := a.api.GetPreview(ctx, token)
	if err != nil {
		return err
	}
	a.printf("%s\n", text)

	if _, err := a.api.LogPreviewRead(ctx, token); err != nil {
		return err
	}
	return nil
}

func (a *App) request(ctx context.Context, args []string) error {
	token, err := tokenFlag("request", args)
	if err != nil {
		return err
	}

	s, err := a.api.RequestAccess(ctx, token)
	if err != nil {
		return err
	}
	a.printStatus(s)
	return nil
}

func (a *App) redeem(ctx context.Context, args []string) error {
	fs := newFlagSet("redeem")
	token := fs.String("token", "", "share token")
	code := fs.String("code", "", "access code, prompted when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("token", *token); err != nil {
		return err
	}

	if *code == "" {
		c, err := GetSecret("Enter access code: ", a.out)
		if err != nil {
			return err
		}
		*code = c
	}

	s, err := a.api.RedeemCode(ctx, *token, *code)
	if err != nil {
		return err
	}
	a.printStatus(s)
	return nil
}

func (a *App) progress(ctx context.Context, args []string) error {
	fs := newFlagSet("progress")
	token := fs.String("token", "", "share token")
	page := fs.Int("page", -1, "current page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("token", *token); err != nil {
		return err
	}
	if *page < 0 {
		return fmt.Errorf("%w -page", errMissingFlag)
	}

	s, err := a.api.TrackProgress(ctx, *token, *page)
	if err != nil {
		return err
	}
	a.printf("status: %s, page %d\n", s.GetStatus(), s.GetCurrentPage())
	return nil
}

func (a *App) read(ctx context.Context, args []string) error {
	token, err := tokenFlag("read", args)
	if err != nil {
		return err
	}

	u, err := a.api.GetManuscriptURL(ctx, token)
	if err != nil {
		return err
	}
	a.printf("%s\n", u.GetUrl())
	a.printf("link expires at %s\n", formatTimestamp(u.GetExpiresAt()))
	return nil
}

func (a *App) message(ctx context.Context, args []string) error {
	fs := newFlagSet("message")
	token := fs.String("token", "", "share token")
	name := fs.String("name", "", "your name")
	body := fs.String("body", "", "message text, prompted when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("token", *token); err != nil {
		return err
	}

	if *body == "" {
		b, err := GetSimpleText(a.reader, "Message to the author:", a.out)
		if err != nil {
			return err
		}
		*body = b
	}

	m, err := a.api.PostMessage(ctx, *token, *name, *body)
	if err != nil {
		return err
	}
	a.printf("message %s sent\n", m.GetId())
	return nil
}
