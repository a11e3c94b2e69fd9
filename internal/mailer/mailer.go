package mailer

import (
	"casino_app/internal/config"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

type Mailer interface {
	SendVerificationEmail(to, link string) error
	SendPasswordResetEmail(to, link string) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) SendVerificationEmail(to, link string) error {
	subject := "Verify your email address"
	body := fmt.Sprintf("Welcome to Casino App!\n\nUse this link to verify your email address:\n\n%s", link)
	return m.send(to, subject, body)
}

func (m *smtpMailer) SendPasswordResetEmail(to, link string) error {
	subject := "Reset your password"
	body := fmt.Sprintf("Use this link to reset your password:\n\n%s\n\nThis link will expire in 1 hour.\nIf you did not request a reset, you can ignore this email.", link)
	return m.send(to, subject, body)
}

func (m *smtpMailer) send(to, subject, body string) error {
	if !m.cfg.Configured() {
		return errors.New("smtp is not configured")
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From(),
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User(), m.cfg.Pass(), m.cfg.Host())
	return smtp.SendMail(m.cfg.Addr(), auth, m.cfg.From(), []string{to}, []byte(msg))
}
