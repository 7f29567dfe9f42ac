package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
	"github.com/dmitrijs2005/sealkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const authorIDKey ctxKey = "authorID"

// authorMethods need a valid author token. Recipient methods carry the
// share token in the request instead.
var authorMethods = map[string]bool{
	pb.SealKeeper_SealManuscript_FullMethodName:    true,
	pb.SealKeeper_GetSeal_FullMethodName:           true,
	pb.SealKeeper_ListSeals_FullMethodName:         true,
	pb.SealKeeper_GetCertificate_FullMethodName:    true,
	pb.SealKeeper_CreateShare_FullMethodName:       true,
	pb.SealKeeper_ListShares_FullMethodName:        true,
	pb.SealKeeper_GetShare_FullMethodName:          true,
	pb.SealKeeper_Approve_FullMethodName:           true,
	pb.SealKeeper_Revoke_FullMethodName:            true,
	pb.SealKeeper_PostAuthorMessage_FullMethodName: true,
	pb.SealKeeper_Dashboard_FullMethodName:         true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !authorMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	authorID, err := auth.GetAuthorIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, authorIDKey, authorID), req)
}

func authorIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(authorIDKey).(string)
	return id
}
