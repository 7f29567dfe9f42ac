// Package grpc exposes the seal registry and the share manager over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
	"github.com/dmitrijs2005/sealkeeper/internal/server/certificate"
	"github.com/dmitrijs2005/sealkeeper/internal/server/dashboard"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
	"github.com/dmitrijs2005/sealkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type sealSvc interface {
	Seal(ctx context.Context, manuscriptID, title, content, author string) (*models.Seal, error)
	Get(ctx context.Context, sealID string) (*models.Seal, error)
	ListAll(ctx context.Context) ([]*models.Seal, error)
	Verify(ctx context.Context, sealID, content string) (bool, string, error)
	Certificate(ctx context.Context, sealID string) (certificate.Certificate, error)
}

type shareSvc interface {
	CreateShare(ctx context.Context, sealID, email, name, message string) (*services.CreateShareResult, error)
	GetShare(ctx context.Context, shareID string) (*models.Share, error)
	ListShares(ctx context.Context, sealID string) ([]*models.Share, error)
	Approve(ctx context.Context, shareID string) (*models.Share, error)
	Revoke(ctx context.Context, shareID string) (*models.Share, error)
	PostAuthorMessage(ctx context.Context, shareID, body string) (*models.Message, error)
	Dashboard(ctx context.Context, sealID string) (*dashboard.View, error)

	LogOpen(ctx context.Context, token string) (*models.Share, error)
	RecipientView(ctx context.Context, token string) (*services.RecipientView, error)
	Preview(ctx context.Context, token string) (string, error)
	LogPreviewRead(ctx context.Context, token string) (*models.Share, error)
	RequestAccess(ctx context.Context, token string) (*models.Share, error)
	Redeem(ctx context.Context, token, code string) (*models.Share, error)
	TrackProgress(ctx context.Context, token string, page int) (*models.Share, error)
	ManuscriptURL(ctx context.Context, token string) (string, time.Time, error)
	PostMessage(ctx context.Context, token, name, body string) (*models.Message, error)
}

type GRPCServer struct {
	pb.UnimplementedSealKeeperServer
	address   string
	seals     sealSvc
	shares    shareSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, seals sealSvc, shares shareSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		seals:     seals,
		shares:    shares,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with the SealKeeper and health services.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterSealKeeperServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.SealKeeper_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}

// Serve accepts connections on lis until ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())
	return srv.Serve(lis)
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}
