package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"go-remodeling-backend/internal/domain"
)

type receiptData struct {
	FullName    string
	Phone       string
	WorkType    string
	SubmittedAt string
	Brand       string
	SiteURL     string
	Year        int
}

// receiptTemplate is the HTML template for the customer confirmation.
const receiptTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Brand}} — Inquiry Received</title>
    <style>
        body { margin: 0; padding: 0; background: #f6f7f9; color: #111; font-family: Arial, sans-serif; }
        .container { max-width: 640px; margin: 0 auto; background: #fff; border: 1px solid #e6e7eb; border-radius: 12px; overflow: hidden; }
        .header { padding: 20px 24px; background: #0c0d0e; color: #d4af37; font-weight: 800; font-size: 20px; }
        .content { padding: 24px; line-height: 1.55; }
        .h1 { font-size: 20px; font-weight: 700; margin: 0 0 12px; }
        .muted { color: #5f666d; }
        .callout { background: #fafafa; border: 1px solid #eceef1; border-radius: 10px; padding: 16px; }
        .footer { padding: 16px 24px; background: #0c0d0e; color: #d4af37; font-size: 12px; text-align: center; }
        a { color: #2b7a78; text-decoration: none; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">{{.Brand}}</div>
        <div class="content">
            <p class="h1">We received your inquiry — thank you, {{.FullName}}!</p>
            <p class="muted">Submitted: {{.SubmittedAt}}</p>
            <div class="callout">
                <p style="margin:0 0 8px;"><strong>Service:</strong> {{.WorkType}}</p>
                {{if .Phone}}<p style="margin:0;"><strong>Phone:</strong> {{.Phone}}</p>{{end}}
            </div>
            <p>
                A project specialist will review your request and reach out by email or phone within
                <strong>24 hours</strong> (often sooner) to discuss next steps and schedule your free consultation.
            </p>
            <p class="muted">What happens next?</p>
            <ul>
                <li>We confirm your goals, timeline, and budget.</li>
                <li>We propose options and a clear, itemized quote.</li>
                <li>We coordinate a convenient time for an on-site visit if needed.</li>
            </ul>
            <p>If you need to add details or correct anything, simply reply to this email and our team will update your request.</p>
            <p class="muted">Visit us: <a href="{{.SiteURL}}">{{.SiteURL}}</a></p>
        </div>
        <div class="footer">&copy; {{.Year}} {{.Brand}}. All rights reserved.</div>
    </div>
</body>
</html>`

var receiptTmpl = template.Must(template.New("customer_receipt").Parse(receiptTemplate))

// RenderCustomerReceipt composes the confirmation sent back to the
// submitting customer.
func RenderCustomerReceipt(sub *domain.Submission, meta Meta) (*Rendered, error) {
	name := strings.TrimSpace(sub.FullName)
	if name == "" {
		name = "there"
	}

	data := receiptData{
		FullName:    name,
		Phone:       strings.TrimSpace(sub.Phone),
		WorkType:    sub.WorkType,
		SubmittedAt: meta.SubmittedAt,
		Brand:       meta.Brand,
		SiteURL:     meta.SiteURL,
		Year:        meta.Year,
	}

	var body bytes.Buffer
	if err := receiptTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute customer receipt template: %w", err)
	}

	return &Rendered{
		Subject: fmt.Sprintf("%s — Inquiry Received", meta.Brand),
		HTML:    body.String(),
		Text:    renderCustomerReceiptText(data),
	}, nil
}

func renderCustomerReceiptText(d receiptData) string {
	return joinLines([]string{
		fmt.Sprintf("%s — Inquiry Received", d.Brand),
		"",
		fmt.Sprintf("Hi %s,", d.FullName),
		"",
		fmt.Sprintf("Thanks for reaching out! We received your request on %s.", d.SubmittedAt),
		"",
		line("Service", d.WorkType),
		line("Phone", d.Phone),
		"",
		"A project specialist will contact you by email or phone within 24 hours (often sooner).",
		"Next steps:",
		"• Confirm goals, timeline, and budget",
		"• Share options and an itemized quote",
		"• Schedule a convenient on-site visit if needed",
		"",
		"Need to add or correct anything? Reply to this email and we'll update your request.",
		"",
		fmt.Sprintf("Visit us: %s", d.SiteURL),
		"",
		fmt.Sprintf("— %s", d.Brand),
	})
}
