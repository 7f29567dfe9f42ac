package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/client/client"
	"github.com/dmitrijs2005/sealkeeper/internal/client/config"
	"github.com/dmitrijs2005/sealkeeper/internal/client/repositories/receipts"
	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
)

// Service is the subset of the SealKeeper API the CLI calls.
type Service interface {
	Ping(ctx context.Context) error

	SealManuscript(ctx context.Context, manuscriptID, title, author, content string) (*pb.Seal, error)
	GetSeal(ctx context.Context, sealID string) (*pb.Seal, error)
	ListSeals(ctx context.Context) ([]*pb.Seal, error)
	VerifyContent(ctx context.Context, sealID, content string) (*pb.VerifyContentResponse, error)
	GetCertificate(ctx context.Context, sealID string) (*pb.GetCertificateResponse, error)
	CreateShare(ctx context.Context, sealID, email, name, message string) (*pb.CreateShareResponse, error)
	ListShares(ctx context.Context, sealID string) ([]*pb.Share, error)
	GetShare(ctx context.Context, shareID string) (*pb.Share, error)
	Approve(ctx context.Context, shareID string) (*pb.Share, error)
	Revoke(ctx context.Context, shareID string) (*pb.Share, error)
	PostAuthorMessage(ctx context.Context, shareID, body string) (*pb.Message, error)
	Dashboard(ctx context.Context, sealID, format string) (*pb.DashboardResponse, error)

	OpenShare(ctx context.Context, token string) (*pb.RecipientView, error)
	GetPreview(ctx context.Context, token string) (string, error)
	LogPreviewRead(ctx context.Context, token string) (*pb.StatusResponse, error)
	RequestAccess(ctx context.Context, token string) (*pb.StatusResponse, error)
	RedeemCode(ctx context.Context, token, code string) (*pb.StatusResponse, error)
	TrackProgress(ctx context.Context, token string, page int) (*pb.StatusResponse, error)
	GetManuscriptURL(ctx context.Context, token string) (*pb.ManuscriptURLResponse, error)
	PostMessage(ctx context.Context, token, name, body string) (*pb.Message, error)

	Close() error
}

type App struct {
	config *config.Config
	api    Service

	// openReceipts opens the local receipts database on first use.
	openReceipts func(ctx context.Context) (receipts.Repository, func() error, error)
	receipts     receipts.Repository
	closers      []func() error

	stdin  io.Reader
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.NewSealKeeperClient(c.ServerEndpointAddr, c.AccessToken)
	if err != nil {
		return nil, err
	}
	return newApp(c, api, func(ctx context.Context) (receipts.Repository, func() error, error) {
		repos, err := client.InitDatabase(ctx, c.ReceiptsDB)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing receipts database: %w", err)
		}
		return repos.Receipts, repos.Close, nil
	}), nil
}

func newApp(c *config.Config, api Service, openReceipts func(context.Context) (receipts.Repository, func() error, error)) *App {
	return &App{
		config:       c,
		api:          api,
		openReceipts: openReceipts,
		closers:      []func() error{api.Close},
		stdin:        os.Stdin,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		now:          time.Now,
	}
}

func (a *App) receiptStore(ctx context.Context) (receipts.Repository, error) {
	if a.receipts != nil {
		return a.receipts, nil
	}
	r, closeFn, err := a.openReceipts(ctx)
	if err != nil {
		return nil, err
	}
	a.receipts = r
	a.closers = append(a.closers, closeFn)
	return r, nil
}

// Close releases the connection and the receipts database.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run executes one subcommand. Each server call gets the configured
// request timeout.
func (a *App) Run(ctx context.Context, name string, args []string) error {
	if name == "" || name == "help" {
		a.printHelp()
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		a.printHelp()
		return fmt.Errorf("unknown command %q", name)
	}

	if a.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RequestTimeout)
		defer cancel()
	}
	return cmd.run(a, ctx, args)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
