package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SealKeeperClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the author token to every call when one
// is configured. Recipient calls ignore it server side.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewSealKeeperClient dials endpointURL lazily; no I/O happens until the
// first call.
func NewSealKeeperClient(endpointURL, accessToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewSealKeeperClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrAccessDenied, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", common.ErrInvalidState, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// call runs one RPC and maps its error.
func call[Req, Resp any](ctx context.Context, s *GRPCClient, fn func(context.Context, *Req, ...grpc.CallOption) (*Resp, error), req *Req) (*Resp, error) {
	resp, err := fn(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	_, err := call(ctx, s, s.client.Ping, &pb.PingRequest{})
	return err
}

func (s *GRPCClient) SealManuscript(ctx context.Context, manuscriptID, title, author, content string) (*pb.Seal, error) {
	resp, err := call(ctx, s, s.client.SealManuscript, &pb.SealManuscriptRequest{
		ManuscriptId: manuscriptID, Title: title, Author: author, Content: content,
	})
	if err != nil {
		return nil, err
	}
	return resp.GetSeal(), nil
}

func (s *GRPCClient) GetSeal(ctx context.Context, sealID string) (*pb.Seal, error) {
	resp, err := call(ctx, s, s.client.GetSeal, &pb.GetSealRequest{SealId: sealID})
	if err != nil {
		return nil, err
	}
	return resp.GetSeal(), nil
}

func (s *GRPCClient) ListSeals(ctx context.Context) ([]*pb.Seal, error) {
	resp, err := call(ctx, s, s.client.ListSeals, &pb.ListSealsRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetSeals(), nil
}

func (s *GRPCClient) VerifyContent(ctx context.Context, sealID, content string) (*pb.VerifyContentResponse, error) {
	return call(ctx, s, s.client.VerifyContent, &pb.VerifyContentRequest{SealId: sealID, Content: content})
}

func (s *GRPCClient) GetCertificate(ctx context.Context, sealID string) (*pb.GetCertificateResponse, error) {
	return call(ctx, s, s.client.GetCertificate, &pb.GetCertificateRequest{SealId: sealID})
}

func (s *GRPCClient) CreateShare(ctx context.Context, sealID, email, name, message string) (*pb.CreateShareResponse, error) {
	return call(ctx, s, s.client.CreateShare, &pb.CreateShareRequest{
		SealId: sealID, RecipientEmail: email, RecipientName: name, Message: message,
	})
}

func (s *GRPCClient) ListShares(ctx context.Context, sealID string) ([]*pb.Share, error) {
	resp, err := call(ctx, s, s.client.ListShares, &pb.ListSharesRequest{SealId: sealID})
	if err != nil {
		return nil, err
	}
	return resp.GetShares(), nil
}

func (s *GRPCClient) GetShare(ctx context.Context, shareID string) (*pb.Share, error) {
	resp, err := call(ctx, s, s.client.GetShare, &pb.ShareIDRequest{ShareId: shareID})
	if err != nil {
		return nil, err
	}
	return resp.GetShare(), nil
}

func (s *GRPCClient) Approve(ctx context.Context, shareID string) (*pb.Share, error) {
	resp, err := call(ctx, s, s.client.Approve, &pb.ShareIDRequest{ShareId: shareID})
	if err != nil {
		return nil, err
	}
	return resp.GetShare(), nil
}

func (s *GRPCClient) Revoke(ctx context.Context, shareID string) (*pb.Share, error) {
	resp, err := call(ctx, s, s.client.Revoke, &pb.ShareIDRequest{ShareId: shareID})
	if err != nil {
		return nil, err
	}
	return resp.GetShare(), nil
}

func (s *GRPCClient) PostAuthorMessage(ctx context.Context, shareID, body string) (*pb.Message, error) {
	resp, err := call(ctx, s, s.client.PostAuthorMessage, &pb.PostAuthorMessageRequest{ShareId: shareID, Body: body})
	if err != nil {
		return nil, err
	}
	return resp.GetMessage(), nil
}

func (s *GRPCClient) Dashboard(ctx context.Context, sealID, format string) (*pb.DashboardResponse, error) {
	return call(ctx, s, s.client.Dashboard, &pb.DashboardRequest{SealId: sealID, Format: format})
}

func (s *GRPCClient) OpenShare(ctx context.Context, token string) (*pb.RecipientView, error) {
	resp, err := call(ctx, s, s.client.OpenShare, &pb.TokenRequest{Token: token})
	if err != nil {
		return nil, err
	}
	return resp.GetView(), nil
}

func (s *GRPCClient) GetPreview(ctx context.Context, token string) (string, error) {
	resp, err := call(ctx, s, s.client.GetPreview, &pb.TokenRequest{Token: token})
	if err != nil {
		return "", err
	}
	return resp.GetPreview(), nil
}

func (s *GRPCClient) LogPreviewRead(ctx context.Context, token string) (*pb.StatusResponse, error) {
	return call(ctx, s, s.client.LogPreviewRead, &pb.TokenRequest{Token: token})
}

func (s *GRPCClient) RequestAccess(ctx context.Context, token string) (*pb.StatusResponse, error) {
	return call(ctx, s, s.client.RequestAccess, &pb.TokenRequest{Token: token})
}

func (s *GRPCClient) RedeemCode(ctx context.Context, token, code string) (*pb.StatusResponse, error) {
	return call(ctx, s, s.client.RedeemCode, &pb.RedeemCodeRequest{Token: token, Code: code})
}

func (s *GRPCClient) TrackProgress(ctx context.Context, token string, page int) (*pb.StatusResponse, error) {
	return call(ctx, s, s.client.TrackProgress, &pb.TrackProgressRequest{Token: token, Page: int32(page)})
}

func (s *GRPCClient) GetManuscriptURL(ctx context.Context, token string) (*pb.ManuscriptURLResponse, error) {
	return call(ctx, s, s.client.GetManuscriptURL, &pb.TokenRequest{Token: token})
}

func (s *GRPCClient) PostMessage(ctx context.Context, token, name, body string) (*pb.Message, error) {
	resp, err := call(ctx, s, s.client.PostMessage, &pb.PostMessageRequest{Token: token, Name: name, Body: body})
	if err != nil {
		return nil, err
	}
	return resp.GetMessage(), nil
}
