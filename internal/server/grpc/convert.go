package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
	"github.com/dmitrijs2005/sealkeeper/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// optionalTimestamp keeps an unset time unset on the wire.
func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func sealToPB(s *models.Seal) *pb.Seal {
	return &pb.Seal{
		Id:            s.ID,
		ManuscriptId:  s.ManuscriptID,
		Title:         s.Title,
		Author:        s.Author,
		ContentHash:   s.ContentHash,
		HashAlgorithm: s.HashAlgorithm,
		ContentLength: s.ContentLength,
		HasSnapshot:   s.HasSnapshot(),
		SealedAt:      timestamppb.New(s.SealedAt),
		ShareIds:      s.ShareIDs,
	}
}

func messageToPB(m models.Message) *pb.Message {
	return &pb.Message{
		Id:          m.ID,
		Sender:      string(m.Sender),
		SenderName:  m.SenderName,
		SenderEmail: m.SenderEmail,
		Body:        m.Body,
		CreatedAt:   timestamppb.New(m.CreatedAt),
	}
}

func messagesToPB(ms []models.Message) []*pb.Message {
	out := make([]*pb.Message, 0, len(ms))
	for _, m := range ms {
		out = append(out, messageToPB(m))
	}
	return out
}

func shareToPB(s *models.Share) *pb.Share {
	return &pb.Share{
		Id:                 s.ID,
		SealId:             s.SealID,
		Token:              s.Token,
		RecipientEmail:     s.RecipientEmail,
		RecipientName:      s.RecipientName,
		AuthorMessage:      s.AuthorMessage,
		Status:             string(s.Status),
		SentAt:             timestamppb.New(s.SentAt),
		OpenedAt:           optionalTimestamp(s.OpenedAt),
		PreviewReadAt:      optionalTimestamp(s.PreviewReadAt),
		CodeRequestedAt:    optionalTimestamp(s.CodeRequestedAt),
		CodeProvidedAt:     optionalTimestamp(s.CodeProvidedAt),
		FullAccessAt:       optionalTimestamp(s.FullAccessAt),
		RevokedAt:          optionalTimestamp(s.RevokedAt),
		AccessCode:         s.AccessCode,
		CodeExpiresAt:      optionalTimestamp(s.CodeExpiresAt),
		FailedCodeAttempts: int32(s.FailedCodeAttempts),
		CurrentPage:        int32(s.CurrentPage),
		LastReadAt:         optionalTimestamp(s.LastReadAt),
		Messages:           messagesToPB(s.Messages),
	}
}

func statusToPB(s *models.Share) *pb.StatusResponse {
	return &pb.StatusResponse{
		Status:        string(s.Status),
		CodeExpiresAt: optionalTimestamp(s.CodeExpiresAt),
		CurrentPage:   int32(s.CurrentPage),
	}
}

func viewToPB(v *services.RecipientView) *pb.RecipientView {
	return &pb.RecipientView{
		Title:         v.Title,
		Author:        v.Author,
		SealedAt:      timestamppb.New(v.SealedAt),
		ContentHash:   v.ContentHash,
		HashAlgorithm: v.HashAlgorithm,
		RecipientName: v.RecipientName,
		AuthorMessage: v.AuthorMessage,
		Status:        string(v.Status),
		OpenedAt:      optionalTimestamp(v.OpenedAt),
		PreviewReadAt: optionalTimestamp(v.PreviewReadAt),
		CodeExpiresAt: optionalTimestamp(v.CodeExpiresAt),
		CurrentPage:   int32(v.CurrentPage),
		LastReadAt:    optionalTimestamp(v.LastReadAt),
		Messages:      messagesToPB(v.Messages),
	}
}
