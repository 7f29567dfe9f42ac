package proto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestServiceDescriptorMatchesServiceDesc(t *testing.T) {
	fd := File_internal_proto_sealkeeper_proto
	require.Equal(t, 1, fd.Services().Len())

	svc := fd.Services().Get(0)
	assert.Equal(t, SealKeeper_ServiceDesc.ServiceName, string(svc.FullName()))
	require.Equal(t, len(SealKeeper_ServiceDesc.Methods), svc.Methods().Len())

	for _, m := range SealKeeper_ServiceDesc.Methods {
		md := svc.Methods().ByName(protoreflect.Name(m.MethodName))
		require.NotNil(t, md, m.MethodName)
		assert.False(t, md.IsStreamingClient())
		assert.False(t, md.IsStreamingServer())
	}
}

func TestShareWireRoundTrip(t *testing.T) {
	sent := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	in := &Share{
		Id:                 "sh-1",
		SealId:             "seal-1",
		Status:             "CODE_PROVIDED",
		SentAt:             timestamppb.New(sent),
		CodeExpiresAt:      timestamppb.New(sent.Add(time.Hour)),
		AccessCode:         "123456",
		FailedCodeAttempts: 1,
		Messages:           []*Message{{Id: "m-1", Sender: "recipient", Body: "hello"}},
	}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &Share{}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.True(t, proto.Equal(in, out))
	assert.Nil(t, out.GetOpenedAt())
	assert.True(t, out.GetSentAt().AsTime().Equal(sent))
}

func TestRecipientViewHasNoAccessCodeField(t *testing.T) {
	md := (&RecipientView{}).ProtoReflect().Descriptor()
	assert.Nil(t, md.Fields().ByName("access_code"))
	assert.NotNil(t, (&Share{}).ProtoReflect().Descriptor().Fields().ByName("access_code"))
}
