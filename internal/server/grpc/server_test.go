package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/cryptox"
	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
	"github.com/dmitrijs2005/sealkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sealkeeper/internal/server/mail"
	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sealkeeper/internal/server/services"
	"github.com/dmitrijs2005/sealkeeper/internal/server/snapshots"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

const testSecret = "test-secret"

type testEnv struct {
	client pb.SealKeeperClient
	conn   *grpc.ClientConn
	author context.Context
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repos := repomanager.NewMemoryRepositoryManager()
	store := snapshots.NewMemoryStore()
	hasher, err := cryptox.NewHasher(cryptox.AlgorithmSHA256)
	require.NoError(t, err)

	l := logging.Discard()
	seals := services.NewSealRegistry(repos, hasher, store, l)
	shares := services.NewShareManager(repos, mail.NewLogMailer(l), store, l, services.ShareSettings{
		CodeValidity:    time.Hour,
		MaxCodeAttempts: 3,
		PreviewRunes:    16,
		PresignTTL:      time.Minute,
		PublicBaseURL:   "https://sealkeeper.test",
	})
	srv := NewGRPCServer("bufnet", l, seals, shares, testSecret)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	tok, err := auth.GenerateToken("author-1", []byte(testSecret), time.Hour)
	require.NoError(t, err)

	return &testEnv{
		client: pb.NewSealKeeperClient(conn),
		conn:   conn,
		author: metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, tok),
	}
}

func TestHealth_Serving(t *testing.T) {
	env := newTestEnv(t)

	resp, err := healthpb.NewHealthClient(env.conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.SealKeeper_ServiceDesc.ServiceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Discard(), nil, nil, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Discard(), nil, nil, "secret")
	require.Error(t, srv.Run(context.Background()))
}
