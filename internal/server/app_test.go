package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	"github.com/dmitrijs2005/sealkeeper/internal/server/config"
	"github.com/dmitrijs2005/sealkeeper/internal/server/mail"
	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sealkeeper/internal/server/snapshots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	return c
}

func TestNewApp_MemoryDefaults(t *testing.T) {
	app, err := newApp(context.Background(), testConfig(), logging.Discard())
	require.NoError(t, err)

	assert.IsType(t, &repomanager.MemoryRepositoryManager{}, app.repos)
	assert.Nil(t, app.store)
	assert.IsType(t, &mail.LogMailer{}, app.mailer)
}

func TestNewApp_HTTPMailerAndS3(t *testing.T) {
	c := testConfig()
	c.MailEndpoint = "https://mail.example/emails"
	c.S3Bucket = "manuscripts"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"

	app, err := newApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)

	assert.IsType(t, &mail.HTTPMailer{}, app.mailer)
	assert.IsType(t, &snapshots.S3Store{}, app.store)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	c := testConfig()
	c.HashAlgorithm = "md5"

	_, err := newApp(context.Background(), c, logging.Discard())
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := newApp(context.Background(), testConfig(), logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
}
