package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCommands_RequireToken(t *testing.T) {
	for _, name := range []string{"open", "preview", "request", "redeem", "progress", "read", "message"} {
		t.Run(name, func(t *testing.T) {
			ta := newTestApp(t, "")
			err := ta.Run(context.Background(), name, nil)
			require.ErrorIs(t, err, errMissingFlag)
			assert.Empty(t, ta.api.calls)
		})
	}
}

func TestOpen_PrintsView(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.Run(context.Background(), "open", []string{"-token", "tok"}))
	out := ta.out.String()
	assert.Contains(t, out, "Dear Rita")
	assert.Contains(t, out, "Enjoy")
	assert.Contains(t, out, "status:    OPENED")
}

func TestPreview_LogsRead(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.Run(context.Background(), "preview", []string{"-token", "tok"}))
	assert.Contains(t, ta.out.String(), "In the beginning")
	assert.Equal(t, []string{"GetPreview", "LogPreviewRead"}, ta.api.calls)
}

func TestPreview_ErrorStopsBeforeLogging(t *testing.T) {
	ta := newTestApp(t, "")
	ta.api.err = common.ErrInvalidState
	err := ta.Run(context.Background(), "preview", []string{"-token", "tok"})
	require.ErrorIs(t, err, common.ErrInvalidState)
	assert.Equal(t, []string{"GetPreview"}, ta.api.calls)
}

func TestRequest(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.Run(context.Background(), "request", []string{"-token", "tok"}))
	assert.Contains(t, ta.out.String(), "CODE_REQUESTED")
}

func TestRedeem_CodeFlag(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.Run(context.Background(), "redeem", []string{"-token", "tok", "-code", "ABCD1234"}))
	assert.Equal(t, "ABCD1234", ta.api.code)
	assert.Contains(t, ta.out.String(), "FULL_ACCESS")
}

func TestRedeem_PromptsForCode(t *testing.T) {
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(" WXYZ9876 \n"), nil }
	defer func() { readPassword = old }()

	ta := newTestApp(t, "")
	require.NoError(t, ta.Run(context.Background(), "redeem", []string{"-token", "tok"}))
	assert.Equal(t, "WXYZ9876", ta.api.code)
	assert.Contains(t, ta.out.String(), "Enter access code: ")
}

func TestRedeem_PromptError(t *testing.T) {
	old := readPassword
	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	defer func() { readPassword = old }()

	ta := newTestApp(t, "")
	err := ta.Run(context.Background(), "redeem", []string{"-token", "tok"})
	require.Error(t, err)
	assert.Empty(t, ta.api.calls)
}

func TestRedeem_Rejected(t *testing.T) {
	ta := newTestApp(t, "")
	ta.api.err = common.ErrAuthorization
	err := ta.Run(context.Background(), "redeem", []string{"-token", "tok", "-code", "bad"})
	require.ErrorIs(t, err, common.ErrAuthorization)
}

func TestProgress(t *testing.T) {
	ta := newTestApp(t, "")
	ctx := context.Background()

	err := ta.Run(ctx, "progress", []string{"-token", "tok"})
	require.ErrorIs(t, err, errMissingFlag)

	require.NoError(t, ta.Run(ctx, "progress", []string{"-token", "tok", "-page", "42"}))
	assert.Equal(t, 42, ta.api.page)
	assert.Contains(t, ta.out.String(), "READING, page 42")
}

func TestRead_PrintsURL(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.Run(context.Background(), "read", []string{"-token", "tok"}))
	assert.Contains(t, ta.out.String(), "https://bucket/manuscript?sig=x")
	assert.Contains(t, ta.out.String(), "link expires at")
}

func TestMessage_BodyFlag(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.Run(context.Background(), "message", []string{"-token", "tok", "-name", "Rita", "-body", "loved it"}))
	assert.Equal(t, "Rita", ta.api.name)
	assert.Equal(t, "loved it", ta.api.body)
}

func TestMessage_PromptsForBody(t *testing.T) {
	ta := newTestApp(t, "page ten has a typo\n")
	require.NoError(t, ta.Run(context.Background(), "message", []string{"-token", "tok"}))
	assert.Equal(t, "page ten has a typo", ta.api.body)
	assert.Contains(t, ta.out.String(), "Message to the author:")
}
