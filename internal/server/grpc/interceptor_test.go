package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
	"github.com/dmitrijs2005/sealkeeper/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("", logging.Discard(), nil, nil, secret)
}

func withToken(tok string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, tok))
}

func TestInterceptor_RecipientMethodNeedsNoToken(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.SealKeeper_RedeemCode_FullMethodName}

	called := false
	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		called = true
		return "ok", nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_AuthorMethodMissingToken(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.SealKeeper_Approve_FullMethodName}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_AuthorMethodBadAndExpiredToken(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.SealKeeper_SealManuscript_FullMethodName}
	h := func(ctx context.Context, req any) (any, error) { return nil, nil }

	_, err := s.accessTokenInterceptor(withToken("garbage"), nil, info, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	expired, err := auth.GenerateToken("a", []byte("secret"), -time.Minute)
	require.NoError(t, err)
	_, err = s.accessTokenInterceptor(withToken(expired), nil, info, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "expired")
}

func TestInterceptor_AuthorMethodValidToken(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.SealKeeper_Dashboard_FullMethodName}

	tok, err := auth.GenerateToken("author-7", []byte("secret"), time.Hour)
	require.NoError(t, err)

	var seen string
	_, err = s.accessTokenInterceptor(withToken(tok), nil, info, func(ctx context.Context, req any) (any, error) {
		seen = authorIDFromContext(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "author-7", seen)
}

func TestToStatus(t *testing.T) {
	s := newTestServer("secret")
	ctx := context.Background()

	cases := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrNotFound, codes.NotFound},
		{common.ErrNoSnapshot, codes.NotFound},
		{common.ErrInvalidEmail, codes.InvalidArgument},
		{common.ErrShareRevoked, codes.FailedPrecondition},
		{common.ErrCodeLive, codes.FailedPrecondition},
		{common.ErrCodeExpired, codes.PermissionDenied},
		{common.ErrCodeLocked, codes.PermissionDenied},
		{common.ErrInvalidToken, codes.Unauthenticated},
		{fmt.Errorf("wrapped: %w", common.ErrCodeMismatch), codes.PermissionDenied},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("db exploded"), codes.Internal},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, status.Code(s.toStatus(ctx, "M", c.err)), c.err.Error())
	}

	assert.Equal(t, "internal error", status.Convert(s.toStatus(ctx, "M", errors.New("secret detail"))).Message())
}

func TestAuthorCallsThroughServer(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.ListSeals(context.Background(), &pb.ListSealsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = env.client.ListSeals(env.author, &pb.ListSealsRequest{})
	assert.NoError(t, err)
}
