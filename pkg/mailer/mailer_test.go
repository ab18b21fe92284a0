package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIMEMultipartAlternative(t *testing.T) {
	msg := &Message{
		From:     "noreply@imperialremodel.com",
		FromName: "Imperial Home Remodeling",
		To:       "jane@example.com",
		ReplyTo:  "info@imperialremodel.com",
		Subject:  "Imperial Home Remodeling — Inquiry Received",
		HTML:     "<p>Hello</p>",
		Text:     "Hello",
	}

	raw, err := buildMIME(msg, time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, `From: "Imperial Home Remodeling" <noreply@imperialremodel.com>`)
	assert.Contains(t, out, "To: jane@example.com")
	assert.Contains(t, out, "Reply-To: info@imperialremodel.com")
	assert.Contains(t, out, "MIME-Version: 1.0")
	assert.Contains(t, out, "Content-Type: multipart/alternative")
	assert.Contains(t, out, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, out, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, out, "31 Aug 2026 10:00:00 +0000")

	// Text part precedes HTML so clients prefer the richer rendering
	assert.Less(t, strings.Index(out, "text/plain"), strings.Index(out, "text/html"))
}

func TestBuildMIMEOmitsEmptyReplyTo(t *testing.T) {
	msg := &Message{
		From:    "jane@example.com",
		To:      "info@imperialremodel.com",
		Subject: "Quote",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	}

	raw, err := buildMIME(msg, time.Now())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Reply-To:")
}

func TestBuildMIMESanitizesHeaderInjection(t *testing.T) {
	msg := &Message{
		From:    "jane@example.com",
		To:      "info@imperialremodel.com",
		Subject: "Quote\r\nBcc: victim@example.com",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	}

	raw, err := buildMIME(msg, time.Now())
	require.NoError(t, err)
	// The CRLF is flattened so no Bcc header line can be smuggled in
	assert.NotContains(t, string(raw), "\r\nBcc:")
	assert.Contains(t, string(raw), "Subject: Quote  Bcc: victim@example.com")
}

func TestBuildMIMERequiresAddresses(t *testing.T) {
	_, err := buildMIME(&Message{To: "someone@example.com"}, time.Now())
	assert.Error(t, err)

	_, err = buildMIME(&Message{From: "someone@example.com"}, time.Now())
	assert.Error(t, err)
}

func TestNormalizeBodyForcesCRLF(t *testing.T) {
	assert.Equal(t, "a\r\nb\r\nc", normalizeBody("a\nb\r\nc"))
	assert.Equal(t, "", normalizeBody(""))
}
