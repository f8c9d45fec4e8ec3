package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// ErrNotConfigured is returned when an email is requested but no SMTP
// host is configured. Callers decide whether that is fatal.
var ErrNotConfigured = errors.New("smtp is not configured")

// Service defines the interface for sending emails
type Service interface {
	SendResetOTP(to, otp, expiresAt string) error
	SendWorkOrderSubmitted(to, customerName, workOrderID, completionDate string) error
}

type serviceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewService creates a new email service instance
func NewService(cfg config.SMTPConfig) (Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &serviceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type resetOTPEmailData struct {
	OTP       string
	ExpiresAt string
}

// SendResetOTP sends the password reset code to the customer
func (s *serviceImpl) SendResetOTP(to, otp, expiresAt string) error {
	data := resetOTPEmailData{
		OTP:       otp,
		ExpiresAt: expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "reset_otp.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your Password Reset Code", body.String())
}

type workOrderSubmittedEmailData struct {
	CustomerName   string
	WorkOrderID    string
	CompletionDate string
}

// SendWorkOrderSubmitted notifies the customer that their work order
// has been completed and signed off
func (s *serviceImpl) SendWorkOrderSubmitted(to, customerName, workOrderID, completionDate string) error {
	data := workOrderSubmittedEmailData{
		CustomerName:   customerName,
		WorkOrderID:    workOrderID,
		CompletionDate: completionDate,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "work_order_submitted.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your Work Order Has Been Completed", body.String())
}

func (s *serviceImpl) sendHTML(to, subject, htmlBody string) error {
	if !s.cfg.Configured() {
		return ErrNotConfigured
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
