package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown renders message bodies. Raw HTML in bodies is dropped, which is
// goldmark's default without html.WithUnsafe.
var markdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))

// Markdown renders a message body to safe HTML.
func Markdown(body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

const stamp = "2006-01-02 15:04 UTC"

func formatTime(t time.Time) string {
	return t.UTC().Format(stamp)
}

var pageTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"time":     formatTime,
	"markdown": Markdown,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}: tracking</title>
</head>
<body style="font-family: sans-serif; max-width: 1000px; margin: 0 auto; padding: 20px;">
<h1>{{.Title}}</h1>
<p>By {{.Author}}. Sealed {{time .SealedAt}} ({{.HashAlgorithm}})</p>
<table>
<tr><th>Shares</th><th>Opened</th><th>Awaiting approval</th><th>Full access</th><th>Revoked</th></tr>
<tr><td>{{.Summary.Shares}}</td><td>{{.Summary.Opened}}</td><td>{{.Summary.AwaitingApproval}}</td><td>{{.Summary.FullAccess}}</td><td>{{.Summary.Revoked}}</td></tr>
</table>
{{range .Shares}}
<div class="share" style="background: #f9f9f9; padding: 15px; margin: 10px 0;">
<p><strong>{{.RecipientName}}</strong> &lt;{{.RecipientEmail}}&gt;
<span class="badge" style="background: {{.Badge.Color}}; color: white; padding: 4px 10px; border-radius: 12px;">{{.Badge.Label}}</span></p>
<ul>
{{range .Events}}<li>{{.Name}}: {{time .At}}</li>
{{end}}</ul>
{{if .CurrentPage}}<p>Page {{.CurrentPage}}</p>{{end}}
{{if .NeedsApproval}}<p class="action">Awaiting your approval</p>{{end}}
{{range .Messages}}<div class="message {{.Sender}}"><p>{{if .SenderName}}{{.SenderName}}{{else}}{{.Sender}}{{end}}, {{time .CreatedAt}}</p>{{markdown .Body}}</div>
{{end}}</div>
{{end}}
</body>
</html>
`))

// RenderHTML renders the view as a standalone page.
func (v *View) RenderHTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("render dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderText renders the view for a terminal.
func (v *View) RenderText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s by %s\n", v.Title, v.Author)
	fmt.Fprintf(&b, "sealed %s  %s %s\n", formatTime(v.SealedAt), v.HashAlgorithm, v.ContentHash)
	fmt.Fprintf(&b, "shares: %d  opened: %d  awaiting approval: %d  full access: %d  revoked: %d\n",
		v.Summary.Shares, v.Summary.Opened, v.Summary.AwaitingApproval, v.Summary.FullAccess, v.Summary.Revoked)

	for _, s := range v.Shares {
		fmt.Fprintf(&b, "\n[%s] %s <%s>  id=%s\n", s.Badge.Label, s.RecipientName, s.RecipientEmail, s.ID)
		for _, e := range s.Events {
			fmt.Fprintf(&b, "  %-15s %s\n", e.Name, formatTime(e.At))
		}
		if s.CurrentPage > 0 {
			fmt.Fprintf(&b, "  page %d\n", s.CurrentPage)
		}
		if s.HasCode && s.CodeExpiresAt != nil {
			fmt.Fprintf(&b, "  code valid until %s\n", formatTime(*s.CodeExpiresAt))
		}
		for _, m := range s.Messages {
			who := m.SenderName
			if who == "" {
				who = string(m.Sender)
			}
			fmt.Fprintf(&b, "  > %s (%s): %s\n", who, formatTime(m.CreatedAt), m.Body)
		}
	}
	return b.String()
}
