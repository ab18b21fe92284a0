package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"go-remodeling-backend/internal/domain"
)

type noticeData struct {
	FullName string
	Email    string
	Phone    string
	// PhoneHref is pre-marked as a safe URL: the tel: scheme is not in
	// html/template's allow-list and would otherwise be filtered to
	// #ZgotmplZ. The value is digits plus an optional leading +, built by
	// telHref from a validated phone field.
	PhoneHref   template.URL
	Zip         string
	WorkType    string
	Message     string
	SubmittedAt string
	Brand       string
	Year        int
}

// noticeTemplate is the HTML template for the internal quote-request notice.
// User-supplied fields are escaped by html/template.
const noticeTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Quote Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 640px; margin: 0 auto; border: 1px solid #ddd; border-radius: 8px; overflow: hidden; }
        .header { background: #000; padding: 20px; text-align: center; }
        .header h1 { color: #d4af37; margin: 0; font-size: 24px; }
        .meta { color: #475569; font-size: 13px; margin: 6px 0 0; }
        .pill { display: inline-block; background: #587b7f; color: #fff; border-radius: 999px; padding: 6px 10px; font-size: 12px; font-weight: 700; }
        .content { padding: 24px; background: #fff; }
        .content table { width: 100%; border-collapse: collapse; color: #333; }
        .content td { padding: 8px; }
        .label { font-weight: bold; color: #000; width: 140px; vertical-align: top; }
        .message-box { background: #f7f7f9; padding: 15px; border-left: 4px solid #d4af37; white-space: pre-wrap; }
        .checklist { color: #475569; font-size: 14px; }
        .note { font-size: 12px; color: #999; margin-top: 24px; }
        .footer { background: #000; text-align: center; padding: 12px; }
        .footer p { color: #d4af37; font-size: 12px; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Quote Request</h1>
            {{if .SubmittedAt}}<p class="meta">Submitted {{.SubmittedAt}}</p>{{end}}
            <span class="pill">{{.WorkType}}</span>
        </div>
        <div class="content">
            <table>
                <tr>
                    <td class="label">Full Name:</td>
                    <td>{{.FullName}}</td>
                </tr>
                <tr>
                    <td class="label">Email:</td>
                    <td>{{.Email}}</td>
                </tr>
                {{if .Phone}}
                <tr>
                    <td class="label">Phone:</td>
                    <td><a href="{{.PhoneHref}}">{{.Phone}}</a></td>
                </tr>
                {{end}}
                <tr>
                    <td class="label">ZIP:</td>
                    <td>{{.Zip}}</td>
                </tr>
                <tr>
                    <td class="label">Service:</td>
                    <td>{{.WorkType}}</td>
                </tr>
                {{if .Message}}
                <tr>
                    <td class="label">Project Notes:</td>
                    <td><div class="message-box">{{.Message}}</div></td>
                </tr>
                {{end}}
            </table>
            <p class="checklist"><strong>Quick Checklist</strong></p>
            <ul class="checklist">
                <li>Confirm preferred contact time.</li>
                <li>Gather measurements/photos if available.</li>
                <li>Discuss timeline, budget, permits, and materials.</li>
            </ul>
            <p class="note">This request was submitted via the {{.Brand}} website. You can reply directly to this email to contact the lead.</p>
        </div>
        <div class="footer">
            <p>&copy; {{.Year}} {{.Brand}}</p>
        </div>
    </div>
</body>
</html>`

var noticeTmpl = template.Must(template.New("lead_notice").Parse(noticeTemplate))

// RenderLeadNotice composes the internal notice delivered to the business
// inbox for a validated submission.
func RenderLeadNotice(sub *domain.Submission, meta Meta) (*Rendered, error) {
	data := noticeData{
		FullName:    strings.TrimSpace(sub.FullName),
		Email:       strings.TrimSpace(sub.Email),
		Phone:       strings.TrimSpace(sub.Phone),
		Zip:         strings.TrimSpace(sub.Zip),
		WorkType:    sub.WorkType,
		Message:     strings.TrimSpace(sub.Message),
		SubmittedAt: meta.SubmittedAt,
		Brand:       meta.Brand,
		Year:        meta.Year,
	}
	if data.Phone != "" {
		data.PhoneHref = template.URL(telHref(data.Phone))
	}

	var body bytes.Buffer
	if err := noticeTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute lead notice template: %w", err)
	}

	return &Rendered{
		Subject: fmt.Sprintf("%s wants a quote for '%s'", data.FullName, data.WorkType),
		HTML:    body.String(),
		Text:    renderLeadNoticeText(data),
	}, nil
}

func renderLeadNoticeText(d noticeData) string {
	return joinLines([]string{
		fmt.Sprintf("%s — New Quote Request", d.Brand),
		line("Submitted", d.SubmittedAt),
		"",
		"Lead • Website",
		"------------------------------------------------------------",
		line("Full Name", d.FullName),
		line("Email", d.Email),
		line("Phone", d.Phone),
		line("ZIP", d.Zip),
		line("Service", d.WorkType),
		"------------------------------------------------------------",
		line("Project Notes", d.Message),
		"",
		"Quick Checklist:",
		"• Confirm preferred contact time",
		"• Measurements/photos (if available)",
		"• Timeline, budget, permits, materials",
		"",
		"You can reply directly to this email.",
		fmt.Sprintf("© %d %s", d.Year, d.Brand),
	})
}
