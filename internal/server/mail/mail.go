// Package mail delivers transactional email. Delivery failures are reported
// to the caller but never undo the state change that triggered the mail.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/logging"
)

type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

const ResetSubject = "Your password reset link"

var resetTemplate = template.Must(template.New("reset").Parse(`<div style="border: 1px solid black; padding: 20px; font-family: sans-serif; line-height: 2; font-size: 20px;">
  <h2>Hello,</h2>
  <p>A password reset was requested for your account.</p>
  <p><a href="{{.Link}}">Click here to reset your password</a>. The link expires in {{.TTL}}.</p>
  <p>If you did not request this, you can ignore this email.</p>
</div>`))

// RenderResetEmail builds the HTML body linking to
// <frontendURL>/reset?resetToken=<token>.
func RenderResetEmail(frontendURL, token, ttl string) (string, error) {
	link := strings.TrimRight(frontendURL, "/") + "/reset?resetToken=" + url.QueryEscape(token)

	var buf bytes.Buffer
	if err := resetTemplate.Execute(&buf, struct{ Link, TTL string }{link, ttl}); err != nil {
		return "", fmt.Errorf("render reset email: %w", err)
	}
	return buf.String(), nil
}

// LogSender writes messages to the log instead of delivering them. Used
// when no SMTP host is configured.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, to, subject, html string) error {
	s.logger.Info(ctx, "mail not delivered, no smtp host configured", "to", to, "subject", subject, "bytes", len(html))
	return nil
}
