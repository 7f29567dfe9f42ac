package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) VerifyContent(ctx context.Context, req *pb.VerifyContentRequest) (*pb.VerifyContentResponse, error) {
	seal, err := s.seals.Get(ctx, req.GetSealId())
	if err != nil {
		return nil, s.toStatus(ctx, "VerifyContent", err)
	}
	ok, digest, err := s.seals.Verify(ctx, req.GetSealId(), req.GetContent())
	if err != nil {
		return nil, s.toStatus(ctx, "VerifyContent", err)
	}
	return &pb.VerifyContentResponse{
		Match:          ok,
		Digest:         digest,
		ExpectedDigest: seal.ContentHash,
		Algorithm:      seal.HashAlgorithm,
	}, nil
}

// Author methods. The interceptor has already checked the token.

func (s *GRPCServer) SealManuscript(ctx context.Context, req *pb.SealManuscriptRequest) (*pb.SealResponse, error) {
	seal, err := s.seals.Seal(ctx, req.GetManuscriptId(), req.GetTitle(), req.GetContent(), req.GetAuthor())
	if err != nil {
		return nil, s.toStatus(ctx, "SealManuscript", err)
	}
	s.logger.Info(ctx, "Sealed", "seal_id", seal.ID, "author_id", authorIDFromContext(ctx))
	return &pb.SealResponse{Seal: sealToPB(seal)}, nil
}

func (s *GRPCServer) GetSeal(ctx context.Context, req *pb.GetSealRequest) (*pb.SealResponse, error) {
	seal, err := s.seals.Get(ctx, req.GetSealId())
	if err != nil {
		return nil, s.toStatus(ctx, "GetSeal", err)
	}
	return &pb.SealResponse{Seal: sealToPB(seal)}, nil
}

func (s *GRPCServer) ListSeals(ctx context.Context, req *pb.ListSealsRequest) (*pb.ListSealsResponse, error) {
	all, err := s.seals.ListAll(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "ListSeals", err)
	}
	out := make([]*pb.Seal, 0, len(all))
	for _, seal := range all {
		out = append(out, sealToPB(seal))
	}
	return &pb.ListSealsResponse{Seals: out}, nil
}

func (s *GRPCServer) GetCertificate(ctx context.Context, req *pb.GetCertificateRequest) (*pb.GetCertificateResponse, error) {
	cert, err := s.seals.Certificate(ctx, req.GetSealId())
	if err != nil {
		return nil, s.toStatus(ctx, "GetCertificate", err)
	}
	html, err := cert.RenderHTML()
	if err != nil {
		return nil, s.toStatus(ctx, "GetCertificate", err)
	}
	return &pb.GetCertificateResponse{Html: string(html), Text: cert.RenderText()}, nil
}

func (s *GRPCServer) CreateShare(ctx context.Context, req *pb.CreateShareRequest) (*pb.CreateShareResponse, error) {
	res, err := s.shares.CreateShare(ctx, req.GetSealId(), req.GetRecipientEmail(), req.GetRecipientName(), req.GetMessage())
	if err != nil {
		return nil, s.toStatus(ctx, "CreateShare", err)
	}
	resp := &pb.CreateShareResponse{Share: shareToPB(res.Share), MessageId: res.MessageID}
	if res.DeliveryError != nil {
		resp.DeliveryError = res.DeliveryError.Error()
	}
	return resp, nil
}

func (s *GRPCServer) ListShares(ctx context.Context, req *pb.ListSharesRequest) (*pb.ListSharesResponse, error) {
	list, err := s.shares.ListShares(ctx, req.GetSealId())
	if err != nil {
		return nil, s.toStatus(ctx, "ListShares", err)
	}
	out := make([]*pb.Share, 0, len(list))
	for _, sh := range list {
		out = append(out, shareToPB(sh))
	}
	return &pb.ListSharesResponse{Shares: out}, nil
}

func (s *GRPCServer) GetShare(ctx context.Context, req *pb.ShareIDRequest) (*pb.ShareResponse, error) {
	sh, err := s.shares.GetShare(ctx, req.GetShareId())
	if err != nil {
		return nil, s.toStatus(ctx, "GetShare", err)
	}
	return &pb.ShareResponse{Share: shareToPB(sh)}, nil
}

func (s *GRPCServer) Approve(ctx context.Context, req *pb.ShareIDRequest) (*pb.ShareResponse, error) {
	sh, err := s.shares.Approve(ctx, req.GetShareId())
	if err != nil {
		return nil, s.toStatus(ctx, "Approve", err)
	}
	return &pb.ShareResponse{Share: shareToPB(sh)}, nil
}

func (s *GRPCServer) Revoke(ctx context.Context, req *pb.ShareIDRequest) (*pb.ShareResponse, error) {
	sh, err := s.shares.Revoke(ctx, req.GetShareId())
	if err != nil {
		return nil, s.toStatus(ctx, "Revoke", err)
	}
	return &pb.ShareResponse{Share: shareToPB(sh)}, nil
}

func (s *GRPCServer) PostAuthorMessage(ctx context.Context, req *pb.PostAuthorMessageRequest) (*pb.MessageResponse, error) {
	m, err := s.shares.PostAuthorMessage(ctx, req.GetShareId(), req.GetBody())
	if err != nil {
		return nil, s.toStatus(ctx, "PostAuthorMessage", err)
	}
	return &pb.MessageResponse{Message: messageToPB(*m)}, nil
}

func (s *GRPCServer) Dashboard(ctx context.Context, req *pb.DashboardRequest) (*pb.DashboardResponse, error) {
	v, err := s.shares.Dashboard(ctx, req.GetSealId())
	if err != nil {
		return nil, s.toStatus(ctx, "Dashboard", err)
	}

	var rendered string
	switch req.GetFormat() {
	case "html":
		b, err := v.RenderHTML()
		if err != nil {
			return nil, s.toStatus(ctx, "Dashboard", err)
		}
		rendered = string(b)
	case "", "text":
		rendered = v.RenderText()
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown format %q", req.GetFormat())
	}

	return &pb.DashboardResponse{
		Rendered:         rendered,
		Shares:           int32(v.Summary.Shares),
		Opened:           int32(v.Summary.Opened),
		AwaitingApproval: int32(v.Summary.AwaitingApproval),
		FullAccess:       int32(v.Summary.FullAccess),
		Revoked:          int32(v.Summary.Revoked),
	}, nil
}

// Recipient methods. The share token is the only credential.

func (s *GRPCServer) OpenShare(ctx context.Context, req *pb.TokenRequest) (*pb.RecipientViewResponse, error) {
	if _, err := s.shares.LogOpen(ctx, req.GetToken()); err != nil {
		return nil, s.toStatus(ctx, "OpenShare", err)
	}
	v, err := s.shares.RecipientView(ctx, req.GetToken())
	if err != nil {
		return nil, s.toStatus(ctx, "OpenShare", err)
	}
	return &pb.RecipientViewResponse{View: viewToPB(v)}, nil
}

func (s *GRPCServer) GetPreview(ctx context.Context, req *pb.TokenRequest) (*pb.PreviewResponse, error) {
	p, err := s.shares.Preview(ctx, req.GetToken())
	if err != nil {
		return nil, s.toStatus(ctx, "GetPreview", err)
	}
	return &pb.PreviewResponse{Preview: p}, nil
}

func (s *GRPCServer) LogPreviewRead(ctx context.Context, req *pb.TokenRequest) (*pb.StatusResponse, error) {
	sh, err := s.shares.LogPreviewRead(ctx, req.GetToken())
	if err != nil {
		return nil, s.toStatus(ctx, "LogPreviewRead", err)
	}
	return statusToPB(sh), nil
}

func (s *GRPCServer) RequestAccess(ctx context.Context, req *pb.TokenRequest) (*pb.StatusResponse, error) {
	sh, err := s.shares.RequestAccess(ctx, req.GetToken())
	if err != nil {
		return nil, s.toStatus(ctx, "RequestAccess", err)
	}
	return statusToPB(sh), nil
}

func (s *GRPCServer) RedeemCode(ctx context.Context, req *pb.RedeemCodeRequest) (*pb.StatusResponse, error) {
	sh, err := s.shares.Redeem(ctx, req.GetToken(), req.GetCode())
	if err != nil {
		return nil, s.toStatus(ctx, "RedeemCode", err)
	}
	return statusToPB(sh), nil
}

func (s *GRPCServer) TrackProgress(ctx context.Context, req *pb.TrackProgressRequest) (*pb.StatusResponse, error) {
	sh, err := s.shares.TrackProgress(ctx, req.GetToken(), int(req.GetPage()))
	if err != nil {
		return nil, s.toStatus(ctx, "TrackProgress", err)
	}
	return statusToPB(sh), nil
}

func (s *GRPCServer) GetManuscriptURL(ctx context.Context, req *pb.TokenRequest) (*pb.ManuscriptURLResponse, error) {
	u, exp, err := s.shares.ManuscriptURL(ctx, req.GetToken())
	if err != nil {
		return nil, s.toStatus(ctx, "GetManuscriptURL", err)
	}
	return &pb.ManuscriptURLResponse{Url: u, ExpiresAt: timestamppb.New(exp)}, nil
}

func (s *GRPCServer) PostMessage(ctx context.Context, req *pb.PostMessageRequest) (*pb.MessageResponse, error) {
	m, err := s.shares.PostMessage(ctx, req.GetToken(), req.GetName(), req.GetBody())
	if err != nil {
		return nil, s.toStatus(ctx, "PostMessage", err)
	}
	return &pb.MessageResponse{Message: messageToPB(*m)}, nil
}
