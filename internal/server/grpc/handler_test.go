package grpc

import (
	"context"
	"strings"
	"testing"

	pb "github.com/dmitrijs2005/sealkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

const moonrise = "It was midnight. The moon rose slowly over the quiet town."

func (env *testEnv) seal(t *testing.T) *pb.Seal {
	t.Helper()
	resp, err := env.client.SealManuscript(env.author, &pb.SealManuscriptRequest{
		ManuscriptId: "ms-1", Title: "Moonrise", Author: "Jane Writer", Content: moonrise,
	})
	require.NoError(t, err)
	return resp.GetSeal()
}

func (env *testEnv) share(t *testing.T) *pb.Share {
	t.Helper()
	seal := env.seal(t)
	resp, err := env.client.CreateShare(env.author, &pb.CreateShareRequest{
		SealId: seal.GetId(), RecipientEmail: "agent@lit.com", RecipientName: "J. Agent",
	})
	require.NoError(t, err)
	require.Empty(t, resp.GetDeliveryError())
	return resp.GetShare()
}

func TestPing_Public(t *testing.T) {
	env := newTestEnv(t)
	resp, err := env.client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.GetStatus())
}

func TestSealAndVerify(t *testing.T) {
	env := newTestEnv(t)
	seal := env.seal(t)

	assert.Equal(t, "sha256", seal.GetHashAlgorithm())
	assert.Len(t, seal.GetContentHash(), 64)
	assert.True(t, seal.GetHasSnapshot())

	ok, err := env.client.VerifyContent(context.Background(), &pb.VerifyContentRequest{SealId: seal.GetId(), Content: moonrise})
	require.NoError(t, err)
	assert.True(t, ok.GetMatch())
	assert.Equal(t, seal.GetContentHash(), ok.GetDigest())

	bad, err := env.client.VerifyContent(context.Background(), &pb.VerifyContentRequest{SealId: seal.GetId(), Content: moonrise + "!"})
	require.NoError(t, err)
	assert.False(t, bad.GetMatch())
	assert.Equal(t, seal.GetContentHash(), bad.GetExpectedDigest())

	list, err := env.client.ListSeals(env.author, &pb.ListSealsRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetSeals(), 1)

	cert, err := env.client.GetCertificate(env.author, &pb.GetCertificateRequest{SealId: seal.GetId()})
	require.NoError(t, err)
	assert.Contains(t, cert.GetHtml(), "Moonrise")
	assert.Contains(t, cert.GetText(), seal.GetContentHash()[:8])
}

func TestErrorMapping(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.GetSeal(env.author, &pb.GetSealRequest{SealId: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.client.SealManuscript(env.author, &pb.SealManuscriptRequest{ManuscriptId: "ms", Title: "t"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	seal := env.seal(t)
	_, err = env.client.CreateShare(env.author, &pb.CreateShareRequest{SealId: seal.GetId(), RecipientEmail: "nope"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.client.OpenShare(context.Background(), &pb.TokenRequest{Token: "unknown"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.client.Dashboard(env.author, &pb.DashboardRequest{SealId: seal.GetId(), Format: "pdf"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDisclosureFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sh := env.share(t)

	assert.Equal(t, "SENT", sh.GetStatus())
	assert.Empty(t, sh.GetAccessCode())

	_, err := env.client.GetPreview(ctx, &pb.TokenRequest{Token: sh.GetToken()})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "preview needs an open first")

	view, err := env.client.OpenShare(ctx, &pb.TokenRequest{Token: sh.GetToken()})
	require.NoError(t, err)
	assert.Equal(t, "OPENED", view.GetView().GetStatus())
	assert.Equal(t, "Moonrise", view.GetView().GetTitle())

	prev, err := env.client.GetPreview(ctx, &pb.TokenRequest{Token: sh.GetToken()})
	require.NoError(t, err)
	assert.Equal(t, "It was midnight.", prev.GetPreview())

	_, err = env.client.LogPreviewRead(ctx, &pb.TokenRequest{Token: sh.GetToken()})
	require.NoError(t, err)

	_, err = env.client.GetManuscriptURL(ctx, &pb.TokenRequest{Token: sh.GetToken()})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	st, err := env.client.RequestAccess(ctx, &pb.TokenRequest{Token: sh.GetToken()})
	require.NoError(t, err)
	assert.Equal(t, "CODE_REQUESTED", st.GetStatus())

	approved, err := env.client.Approve(env.author, &pb.ShareIDRequest{ShareId: sh.GetId()})
	require.NoError(t, err)
	code := approved.GetShare().GetAccessCode()
	require.Len(t, code, 6)

	_, err = env.client.Approve(env.author, &pb.ShareIDRequest{ShareId: sh.GetId()})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "live code")

	_, err = env.client.RedeemCode(ctx, &pb.RedeemCodeRequest{Token: sh.GetToken(), Code: "xxxxxx"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	st, err = env.client.RedeemCode(ctx, &pb.RedeemCodeRequest{Token: sh.GetToken(), Code: code})
	require.NoError(t, err)
	assert.Equal(t, "FULL_ACCESS", st.GetStatus())

	st, err = env.client.TrackProgress(ctx, &pb.TrackProgressRequest{Token: sh.GetToken(), Page: 4})
	require.NoError(t, err)
	assert.Equal(t, "READING", st.GetStatus())
	assert.Equal(t, int32(4), st.GetCurrentPage())

	u, err := env.client.GetManuscriptURL(ctx, &pb.TokenRequest{Token: sh.GetToken()})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.GetUrl(), "memory://"))

	dash, err := env.client.Dashboard(env.author, &pb.DashboardRequest{SealId: sh.GetSealId()})
	require.NoError(t, err)
	assert.Equal(t, int32(1), dash.GetFullAccess())
	assert.NotContains(t, dash.GetRendered(), code)

	_, err = env.client.Revoke(env.author, &pb.ShareIDRequest{ShareId: sh.GetId()})
	require.NoError(t, err)

	_, err = env.client.TrackProgress(ctx, &pb.TrackProgressRequest{Token: sh.GetToken(), Page: 5})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestRecipientViewOmitsCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sh := env.share(t)

	_, err := env.client.RequestAccess(ctx, &pb.TokenRequest{Token: sh.GetToken()})
	require.NoError(t, err)
	approved, err := env.client.Approve(env.author, &pb.ShareIDRequest{ShareId: sh.GetId()})
	require.NoError(t, err)

	resp, err := env.client.OpenShare(ctx, &pb.TokenRequest{Token: sh.GetToken()})
	require.NoError(t, err)
	assert.Equal(t, "CODE_PROVIDED", resp.GetView().GetStatus())
	require.NotNil(t, resp.GetView().GetCodeExpiresAt())

	b, err := proto.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(b), approved.GetShare().GetAccessCode())
}

func TestMessages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sh := env.share(t)

	m, err := env.client.PostMessage(ctx, &pb.PostMessageRequest{Token: sh.GetToken(), Body: "Loved the opening."})
	require.NoError(t, err)
	assert.Equal(t, "recipient", m.GetMessage().GetSender())

	_, err = env.client.PostAuthorMessage(env.author, &pb.PostAuthorMessageRequest{ShareId: sh.GetId(), Body: "Thank you!"})
	require.NoError(t, err)

	_, err = env.client.PostMessage(ctx, &pb.PostMessageRequest{Token: sh.GetToken(), Body: " "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	got, err := env.client.GetShare(env.author, &pb.ShareIDRequest{ShareId: sh.GetId()})
	require.NoError(t, err)
	require.Len(t, got.GetShare().GetMessages(), 2)
	assert.Equal(t, "author", got.GetShare().GetMessages()[1].GetSender())

	list, err := env.client.ListShares(env.author, &pb.ListSharesRequest{SealId: sh.GetSealId()})
	require.NoError(t, err)
	assert.Len(t, list.GetShares(), 1)
}
