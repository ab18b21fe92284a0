package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"time"

	"go-remodeling-backend/config"
)

// SMTPMailer implements Mailer against a real SMTP relay. Port 465 uses
// implicit TLS; other ports negotiate STARTTLS when the server offers it.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	dialer   *net.Dialer
}

// NewSMTPMailer creates a mailer from the relay configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		dialer:   &net.Dialer{Timeout: 30 * time.Second},
	}
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (m *SMTPMailer) IsConfigured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// Send delivers msg over SMTP. The context's deadline bounds the whole
// exchange; cancellation closes the connection.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if msg == nil {
		return errors.New("mailer: message is required")
	}

	payload, err := buildMIME(msg, time.Now())
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(m.host, m.port)
	conn, err := m.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("mailer: dial: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()
	defer close(done)

	tlsConfig := &tls.Config{
		ServerName: m.host,
		MinVersion: tls.VersionTLS12,
	}

	// Implicit TLS (e.g. smtpout.secureserver.net:465)
	if m.port == "465" {
		conn = tls.Client(conn, tlsConfig)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("mailer: new client: %w", err)
	}
	defer client.Close()

	if m.port != "465" {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return fmt.Errorf("mailer: starttls: %w", err)
			}
		}
	}

	if m.username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", m.username, m.password, m.host)
			if err := client.Auth(auth); err != nil {
				return fmt.Errorf("mailer: auth: %w", err)
			}
		}
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("mailer: mail from: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("mailer: rcpt to %s: %w", msg.To, err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: data: %w", err)
	}
	if _, err := writer.Write(payload); err != nil {
		_ = writer.Close()
		return fmt.Errorf("mailer: data write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("mailer: data close: %w", err)
	}

	if err := client.Quit(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("mailer: quit: %w", err)
	}

	return ctx.Err()
}
