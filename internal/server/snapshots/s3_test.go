package snapshots

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	put    *s3.PutObjectInput
	body   []byte
	getErr error
	putErr error
	delErr error
	del    *s3.DeleteObjectInput
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.put = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(f.body)))}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.delErr != nil {
		return nil, f.delErr
	}
	f.del = in
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresign struct {
	err     error
	expires time.Duration
}

func (f *fakePresign) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var o s3.PresignOptions
	for _, fn := range optFns {
		fn(&o)
	}
	f.expires = o.Expires
	return &v4.PresignedHTTPRequest{URL: "https://s3.local/" + aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)}, nil
}

func TestS3Store_PutGet(t *testing.T) {
	objs := &fakeObjects{}
	s := &S3Store{bucket: "manuscripts", client: objs, presign: &fakePresign{}}
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k1", []byte("It was midnight.")))
	assert.Equal(t, "manuscripts", aws.ToString(objs.put.Bucket))
	assert.Equal(t, int64(16), aws.ToInt64(objs.put.ContentLength))

	got, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "It was midnight.", string(got))
}

func TestS3Store_GetMissing(t *testing.T) {
	s := &S3Store{bucket: "b", client: &fakeObjects{getErr: &types.NoSuchKey{}}}
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNoSnapshot)
}

func TestS3Store_Errors(t *testing.T) {
	s := &S3Store{
		bucket:  "b",
		client:  &fakeObjects{getErr: errors.New("down"), putErr: errors.New("down"), delErr: errors.New("down")},
		presign: &fakePresign{err: errors.New("sign")},
	}
	ctx := context.Background()

	assert.ErrorContains(t, s.Put(ctx, "k", nil), "put snapshot")
	_, err := s.Get(ctx, "k")
	assert.ErrorContains(t, err, "get snapshot")
	_, err = s.PresignGet(ctx, "k", time.Minute)
	assert.ErrorContains(t, err, "presign snapshot")
	assert.ErrorContains(t, s.Delete(ctx, "k"), "delete snapshot")
}

func TestS3Store_Delete(t *testing.T) {
	objs := &fakeObjects{}
	s := &S3Store{bucket: "manuscripts", client: objs}

	require.NoError(t, s.Delete(context.Background(), "seals/x.txt"))
	require.NotNil(t, objs.del)
	assert.Equal(t, "manuscripts", aws.ToString(objs.del.Bucket))
	assert.Equal(t, "seals/x.txt", aws.ToString(objs.del.Key))
}

func TestS3Store_PresignGet(t *testing.T) {
	p := &fakePresign{}
	s := &S3Store{bucket: "b", client: &fakeObjects{}, presign: p}

	u, err := s.PresignGet(context.Background(), "seals/x.txt", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/b/seals/x.txt", u)
	assert.Equal(t, 15*time.Minute, p.expires)
}

func TestNewS3Store_AppliesConfig(t *testing.T) {
	origLoad, origNew, origPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient = origLoad, origNew, origPre
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) presignAPI { return &fakePresign{} }

	s, err := NewS3Store(context.Background(), S3Config{
		Region: "us-east-1", AccessKey: "minioadmin", SecretKey: "minioadmin",
		Endpoint: "http://127.0.0.1:9000", Bucket: "manuscripts",
	})
	require.NoError(t, err)
	assert.Equal(t, "manuscripts", s.bucket)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3Store_Errors(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Config{})
	assert.ErrorIs(t, err, common.ErrValidation)

	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	_, err = NewS3Store(context.Background(), S3Config{Bucket: "b"})
	assert.ErrorContains(t, err, "aws config")
}
