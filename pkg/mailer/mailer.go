// Package mailer hands composed messages to an SMTP relay. The Mailer
// interface is the seam the orchestrator depends on; tests substitute a
// mock and the transport details stay out of the usecase layer.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/mail"
	"net/textproto"
	"strings"
	"time"
)

// Message describes one outbound email. HTML and Text are alternative
// renderings of the same content; both are always present.
type Message struct {
	From     string // sender address
	FromName string // optional display name for the From header
	To       string
	ReplyTo  string // optional
	Subject  string
	HTML     string
	Text     string
}

// Mailer delivers a message or returns an error. Any error is treated as a
// dispatch failure by the caller regardless of cause.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// buildMIME assembles a multipart/alternative payload with the text part
// first so clients prefer the HTML rendering.
func buildMIME(msg *Message, now time.Time) ([]byte, error) {
	if msg.From == "" || msg.To == "" {
		return nil, fmt.Errorf("mailer: from and to addresses are required")
	}

	from := mail.Address{Name: msg.FromName, Address: msg.From}

	var buf bytes.Buffer
	body := multipart.NewWriter(&buf)

	writeHeader := func(key, value string) {
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(sanitizeHeaderValue(value))
		buf.WriteString("\r\n")
	}

	writeHeader("From", from.String())
	writeHeader("To", msg.To)
	if msg.ReplyTo != "" {
		writeHeader("Reply-To", msg.ReplyTo)
	}
	writeHeader("Subject", msg.Subject)
	writeHeader("Date", now.UTC().Format(time.RFC1123Z))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `multipart/alternative; boundary="`+body.Boundary()+`"`)
	buf.WriteString("\r\n")

	text, err := body.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, fmt.Errorf("mailer: text part: %w", err)
	}
	if _, err := text.Write([]byte(normalizeBody(msg.Text))); err != nil {
		return nil, fmt.Errorf("mailer: text part: %w", err)
	}

	html, err := body.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, fmt.Errorf("mailer: html part: %w", err)
	}
	if _, err := html.Write([]byte(normalizeBody(msg.HTML))); err != nil {
		return nil, fmt.Errorf("mailer: html part: %w", err)
	}

	if err := body.Close(); err != nil {
		return nil, fmt.Errorf("mailer: close body: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeHeaderValue strips CR/LF so user-influenced values (subject,
// display name) cannot inject extra headers.
func sanitizeHeaderValue(value string) string {
	clean := strings.ReplaceAll(value, "\r", " ")
	clean = strings.ReplaceAll(clean, "\n", " ")
	return strings.TrimSpace(clean)
}

// normalizeBody forces CRLF line endings as SMTP requires.
func normalizeBody(body string) string {
	if body == "" {
		return ""
	}
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.ReplaceAll(normalized, "\n", "\r\n")
}
