// Package contact validates contact form submissions and mails them to the
// site owner.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"net/smtp"
	"strings"
	"time"
)

var (
	ErrInvalidForm   = errors.New("invalid contact form")
	ErrNotConfigured = errors.New("SMTP credentials not configured")
)

type Form struct {
	Name    string
	Email   string
	Message string
}

// Validate trims the fields and checks that all are present and the email
// parses.
func (f *Form) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)

	switch {
	case f.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidForm)
	case f.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidForm)
	case f.Message == "":
		return fmt.Errorf("%w: message is required", ErrInvalidForm)
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return fmt.Errorf("%w: email %q is not valid", ErrInvalidForm, f.Email)
	}
	if strings.ContainsAny(f.Name+f.Email, "\r\n") {
		return fmt.Errorf("%w: header injection", ErrInvalidForm)
	}
	return nil
}

type Sender interface {
	Send(ctx context.Context, f Form) error
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
	// Delay is waited before each send.
	Delay    time.Duration
}

type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, f Form) error {
	if s.cfg.Delay > 0 {
		t := time.NewTimer(s.cfg.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	if s.cfg.User == "" || s.cfg.Password == "" {
		return ErrNotConfigured
	}

	to := s.cfg.To
	if to == "" {
		to = s.cfg.User
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	err := s.sendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{to}, buildMessage(s.cfg.User, to, f))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return fmt.Errorf("send mail: %w", err)
	}

	log.Printf("Email sent successfully from %s (%s)", f.Name, f.Email)
	return nil
}

func buildMessage(from, to string, f Form) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", f.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, f.Name, f.Email, f.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + f.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
