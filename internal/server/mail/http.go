package mail

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/netx"
)

// HTTPMailer posts messages to a Resend-compatible JSON endpoint
// (POST {from, to[], subject, html} with a bearer key, answering {id}).
type HTTPMailer struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
}

func NewHTTPMailer(endpoint, apiKey, from string, timeout time.Duration) *HTTPMailer {
	return &HTTPMailer{
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
		client:   &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send returns an error wrapping common.ErrDeliveryFailed on any failure.
func (m *HTTPMailer) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	var out sendResponse
	err := netx.PostJSON(ctx, m.client, m.endpoint, m.apiKey, sendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDeliveryFailed, err)
	}
	return out.ID, nil
}
