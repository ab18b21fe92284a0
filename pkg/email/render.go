// Package email renders the two outbound messages for a quote request: the
// lead notice for the business inbox and the receipt for the customer. The
// renderers are pure; delivery lives in pkg/mailer.
package email

import (
	"strings"
)

// Meta carries submission context shared by both renderings.
type Meta struct {
	SubmittedAt string // human-readable timestamp
	Brand       string
	SiteURL     string
	Year        int
}

// Rendered is one composed email body pair. Text carries the same
// informational content as HTML so non-HTML mail clients get an equivalent
// message.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// telHref normalizes a phone number for a tel: link
func telHref(phone string) string {
	s := strings.TrimSpace(phone)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	return "tel:" + s
}

// joinLines assembles a plain-text body, dropping empty optional lines
// marked by the sentinel.
const skipLine = "\x00"

func joinLines(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == skipLine {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\r\n")
}

// line renders "Label: value" or drops the line when value is blank.
func line(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return skipLine
	}
	return label + ": " + value
}
