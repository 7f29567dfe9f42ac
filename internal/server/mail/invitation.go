package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

// Invitation is the data of the mail sent when a share is created.
type Invitation struct {
	RecipientName string
	Author        string
	Title         string
	AuthorMessage string
	BaseURL       string
	Token         string
}

var invitationTemplate = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto;">
<p>{{if .RecipientName}}Dear {{.RecipientName}},{{else}}Hello,{{end}}</p>
<p>{{.Author}} has shared the manuscript <strong>{{.Title}}</strong> with you.</p>
{{if .AuthorMessage}}<blockquote style="border-left: 3px solid #ccc; padding-left: 12px;">{{.AuthorMessage}}</blockquote>{{end}}
<p>You can read a preview right away. Full access is granted once you request it and the author approves:</p>
<ol>
<li>Open the link and read the preview</li>
<li>Request full access</li>
<li>The author approves and provides a code</li>
<li>Enter the code to unlock the manuscript</li>
</ol>
<p><a href="{{.Link}}">Open the manuscript</a></p>
<p style="color: #888; font-size: 12px;">This link is personal. Please do not forward it.</p>
</body>
</html>
`))

// Link is the recipient's read URL.
func (i Invitation) Link() string {
	return strings.TrimRight(i.BaseURL, "/") + "/read?token=" + url.QueryEscape(i.Token)
}

// Render returns the subject and HTML body.
func (i Invitation) Render() (string, string, error) {
	var buf bytes.Buffer
	if err := invitationTemplate.Execute(&buf, i); err != nil {
		return "", "", fmt.Errorf("render invitation: %w", err)
	}
	subject := fmt.Sprintf("%s shared %q with you", i.Author, i.Title)
	return subject, buf.String(), nil
}
