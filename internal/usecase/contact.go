package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-remodeling-backend/config"
	"go-remodeling-backend/internal/domain"
	"go-remodeling-backend/pkg/analytics"
	"go-remodeling-backend/pkg/email"
	"go-remodeling-backend/pkg/logger"
	"go-remodeling-backend/pkg/mailer"
)

// ErrMailerUnavailable is returned when the SMTP relay has no credentials
// configured; the handler maps it to 503 rather than a generic failure.
var ErrMailerUnavailable = errors.New("mail service is not configured")

// submittedAtLayout is the human-readable timestamp embedded in both emails.
const submittedAtLayout = "Jan 2, 2006 3:04 PM MST"

type contactUsecase struct {
	mailer      mailer.Mailer
	emitter     analytics.Emitter
	brand       string
	siteURL     string
	fromEmail   string
	leadInbox   string
	sendTimeout time.Duration
	now         func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(m mailer.Mailer, emitter analytics.Emitter, cfg *config.Config) domain.ContactUsecase {
	return &contactUsecase{
		mailer:      m,
		emitter:     emitter,
		brand:       cfg.BrandName,
		siteURL:     cfg.SiteURL,
		fromEmail:   cfg.SMTPFromEmail,
		leadInbox:   cfg.LeadEmailTo,
		sendTimeout: time.Duration(cfg.MailSendTimeoutSeconds) * time.Second,
		now:         time.Now,
	}
}

// SubmitLead renders and dispatches both messages for a validated
// submission. The two sends form a single success predicate: if either
// fails, the whole operation fails and no success is reported to the
// caller. The second send is not attempted after a first-send failure.
func (uc *contactUsecase) SubmitLead(ctx context.Context, sub *domain.Submission) error {
	// A filled honeypot means automated traffic. Report success without
	// sending anything so bots are not taught they were detected.
	if sub.IsHoneypotTripped() {
		logger.Log.Warn("honeypot tripped, dropping submission", "work_type", sub.WorkType)
		uc.emitter.Emit(ctx, analytics.EventLeadHoneypot, map[string]any{
			"work_type": sub.WorkType,
		})
		return nil
	}

	if c, ok := uc.mailer.(interface{ IsConfigured() bool }); ok && !c.IsConfigured() {
		return ErrMailerUnavailable
	}

	now := uc.now()
	meta := email.Meta{
		SubmittedAt: now.Format(submittedAtLayout),
		Brand:       uc.brand,
		SiteURL:     uc.siteURL,
		Year:        now.Year(),
	}

	notice, err := email.RenderLeadNotice(sub, meta)
	if err != nil {
		return fmt.Errorf("render lead notice: %w", err)
	}
	receipt, err := email.RenderCustomerReceipt(sub, meta)
	if err != nil {
		return fmt.Errorf("render customer receipt: %w", err)
	}

	// Internal notice: to the business inbox, from the submitter so the
	// team can reply directly to the lead.
	if err := uc.send(ctx, &mailer.Message{
		From:     sub.Email,
		FromName: sub.FullName,
		To:       uc.leadInbox,
		Subject:  notice.Subject,
		HTML:     notice.HTML,
		Text:     notice.Text,
	}); err != nil {
		uc.emitDispatchFailed(ctx, "lead_notice", err)
		return fmt.Errorf("failed to send lead notice: %w", err)
	}

	// Customer receipt: from the brand address, replies routed to the
	// business inbox.
	if err := uc.send(ctx, &mailer.Message{
		From:     uc.fromEmail,
		FromName: uc.brand,
		To:       sub.Email,
		ReplyTo:  uc.leadInbox,
		Subject:  receipt.Subject,
		HTML:     receipt.HTML,
		Text:     receipt.Text,
	}); err != nil {
		uc.emitDispatchFailed(ctx, "customer_receipt", err)
		return fmt.Errorf("failed to send customer receipt: %w", err)
	}

	uc.emitter.Emit(ctx, analytics.EventLeadSubmitted, map[string]any{
		"work_type": sub.WorkType,
		"zip":       sub.Zip,
	})

	return nil
}

// send applies the per-send timeout; a timeout is a dispatch failure like
// any other transport error.
func (uc *contactUsecase) send(ctx context.Context, msg *mailer.Message) error {
	sendCtx, cancel := context.WithTimeout(ctx, uc.sendTimeout)
	defer cancel()
	return uc.mailer.Send(sendCtx, msg)
}

func (uc *contactUsecase) emitDispatchFailed(ctx context.Context, stage string, err error) {
	logger.Log.Error("mail dispatch failed", "stage", stage, "error", err)
	uc.emitter.Emit(ctx, analytics.EventLeadDispatchFailed, map[string]any{
		"stage": stage,
	})
}
