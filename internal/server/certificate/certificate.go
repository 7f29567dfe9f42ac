// Package certificate renders a human-readable proof of a seal. Rendering
// is pure: the same seal always yields the same document.
package certificate

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05 MST"
	blockSize  = 8
)

// Certificate holds the display fields of one seal.
type Certificate struct {
	SealID        string
	ManuscriptID  string
	Title         string
	Author        string
	Date          string
	Time          string
	Algorithm     string
	Digest        string
	DigestBlocks  []string
	ContentLength int64
}

// New derives a certificate from seal. Times are shown in UTC.
func New(seal *models.Seal) Certificate {
	at := seal.SealedAt.UTC()
	return Certificate{
		SealID:        seal.ID,
		ManuscriptID:  seal.ManuscriptID,
		Title:         seal.Title,
		Author:        seal.Author,
		Date:          at.Format(dateLayout),
		Time:          at.Format(timeLayout),
		Algorithm:     seal.HashAlgorithm,
		Digest:        seal.ContentHash,
		DigestBlocks:  chunk(seal.ContentHash, blockSize),
		ContentLength: seal.ContentLength,
	}
}

func chunk(s string, n int) []string {
	var out []string
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}

// GroupedDigest is the digest split into space-separated blocks.
func (c Certificate) GroupedDigest() string {
	return strings.Join(c.DigestBlocks, " ")
}

var htmlTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Certificate of Creation: {{.Title}}</title>
<style>
body { font-family: Georgia, serif; text-align: center; padding: 40px; }
.certificate { border: 3px solid gold; padding: 40px; max-width: 800px; margin: 0 auto; }
.detail { text-align: left; margin: 20px 0; padding: 10px; background: #f5f5f5; }
.detail strong { display: inline-block; width: 150px; }
.fingerprint { background: #222; color: #0f0; padding: 10px; font-family: monospace; font-size: 14px; word-spacing: 6px; margin: 20px 0; }
.footer { margin-top: 40px; color: #666; font-size: 12px; }
</style>
</head>
<body>
<div class="certificate">
<h1>Certificate of Creation</h1>
<div class="detail"><strong>Title:</strong> {{.Title}}</div>
<div class="detail"><strong>Author:</strong> {{.Author}}</div>
<div class="detail"><strong>Date sealed:</strong> {{.Date}}</div>
<div class="detail"><strong>Time sealed:</strong> {{.Time}}</div>
<div class="detail"><strong>Algorithm:</strong> {{.Algorithm}}</div>
<p>Document fingerprint:</p>
<div class="fingerprint">{{.GroupedDigest}}</div>
<p>The fingerprint identifies the exact text sealed at the time above. Any change to the text produces a different fingerprint.</p>
<div class="footer"><p>Seal {{.SealID}}</p></div>
</div>
</body>
</html>
`))

// RenderHTML returns a standalone HTML document.
func (c Certificate) RenderHTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, c); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderText returns a plain-text version for terminals.
func (c Certificate) RenderText() string {
	var b strings.Builder
	fmt.Fprintln(&b, "CERTIFICATE OF CREATION")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Title:       %s\n", c.Title)
	fmt.Fprintf(&b, "Author:      %s\n", c.Author)
	fmt.Fprintf(&b, "Date sealed: %s\n", c.Date)
	fmt.Fprintf(&b, "Time sealed: %s\n", c.Time)
	fmt.Fprintf(&b, "Algorithm:   %s\n", c.Algorithm)
	fmt.Fprintf(&b, "Fingerprint: %s\n", c.GroupedDigest())
	fmt.Fprintf(&b, "Seal:        %s\n", c.SealID)
	return b.String()
}
