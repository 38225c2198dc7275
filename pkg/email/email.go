package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// Enabled reports whether SMTP is configured. When it is not, callers skip
// notifications instead of failing the triggering operation.
func (s *EmailService) Enabled() bool {
	return s.config.SMTPHost != "" && s.config.FromEmail != ""
}

var invoiceSentTemplate = template.Must(template.New("invoice_sent").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Invoice {{.Reference}}</h2>
	<p>Hello {{.ClientName}},</p>
	<p>Invoice <strong>{{.Reference}}</strong> for <strong>{{printf "%.2f" .Total}}</strong> is now available.</p>
	{{if .DueDate}}<p>Payment is due by <strong>{{.DueDate}}</strong>.</p>{{end}}
	<p>You can view the invoice online: <a href="{{.Link}}">{{.Link}}</a></p>
	<p>Thank you for your business.</p>
</body>
</html>`))

// InvoiceSentData is the template payload for invoice notifications.
type InvoiceSentData struct {
	ClientName string
	Reference  string
	Total      float64
	DueDate    string
	Link       string
}

// SendInvoiceEmail notifies a client that an invoice was issued.
func (s *EmailService) SendInvoiceEmail(toEmail string, data InvoiceSentData) error {
	if data.Link == "" {
		data.Link = fmt.Sprintf("%s/invoices?reference=%s", s.config.FrontendURL, url.QueryEscape(data.Reference))
	}

	var body bytes.Buffer
	if err := invoiceSentTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render invoice email: %w", err)
	}

	subject := fmt.Sprintf("Invoice %s from %s", data.Reference, s.config.FromName)
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, body.String()))
}

var messageReplyTemplate = template.Must(template.New("message_reply").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<p>Hello {{.Name}},</p>
	<p>Thank you for getting in touch. Here is our reply to your message:</p>
	<blockquote style="border-left: 3px solid #ccc; padding-left: 12px; color: #555;">{{.Reply}}</blockquote>
	<p>Your original message:</p>
	<blockquote style="border-left: 3px solid #eee; padding-left: 12px; color: #888;">{{.Original}}</blockquote>
</body>
</html>`))

// MessageReplyData is the template payload for contact-message replies.
type MessageReplyData struct {
	Name     string
	Reply    string
	Original string
}

// SendMessageReplyEmail delivers a reply to a contact message sender.
func (s *EmailService) SendMessageReplyEmail(toEmail string, data MessageReplyData) error {
	var body bytes.Buffer
	if err := messageReplyTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render reply email: %w", err)
	}

	subject := fmt.Sprintf("Re: your message to %s", s.config.FromName)
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, body.String()))
}

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Reset Your Password</h2>
	<p>A password reset was requested for {{.Email}}.</p>
	<p><a href="{{.ResetURL}}" style="background: #2563eb; color: #fff; padding: 10px 18px; text-decoration: none; border-radius: 4px;">Reset Password</a></p>
	<p>If you did not request this, you can safely ignore this email. The link expires in one hour.</p>
</body>
</html>`))

// SendPasswordResetEmail sends a password reset email
func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	var body bytes.Buffer
	err := passwordResetTemplate.Execute(&body, struct {
		Email    string
		ResetURL string
	}{Email: toEmail, ResetURL: resetURL})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Reset Your Password - " + s.config.FromName
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, body.String()))
}

// buildHTMLEmail assembles MIME headers and an HTML body
func (s *EmailService) buildHTMLEmail(to, subject, htmlContent string) []byte {
	headers := fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	return []byte(headers + htmlContent)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
