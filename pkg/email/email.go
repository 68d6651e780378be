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
	AdminEmail   string
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

// SendPasswordResetEmail sends a password reset email
func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := renderTemplate(passwordResetTemplate, struct {
		Email    string
		ResetURL string
		AppName  string
	}{toEmail, resetURL, "Fabworks"})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildHTMLEmail(toEmail, "Reset Your Password - Fabworks", htmlContent)
	return s.sendEmail(toEmail, message)
}

// LeadNotification carries the fields shown in the new-lead alert email.
type LeadNotification struct {
	Name    string
	Email   string
	Phone   string
	Source  string
	Message string
}

// SendLeadNotification alerts the configured admin address about a new lead.
func (s *EmailService) SendLeadNotification(lead LeadNotification) error {
	if s.config.AdminEmail == "" {
		return fmt.Errorf("no admin email configured")
	}

	htmlContent, err := renderTemplate(leadNotificationTemplate, struct {
		LeadNotification
		AppName string
	}{lead, "Fabworks"})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("New enquiry from %s - Fabworks", lead.Name)
	message := s.buildHTMLEmail(s.config.AdminEmail, subject, htmlContent)
	return s.sendEmail(s.config.AdminEmail, message)
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

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func renderTemplate(text string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// passwordResetTemplate is the HTML template for password reset emails
const passwordResetTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Reset Your Password</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 8px; overflow: hidden;">
        <tr>
            <td style="background-color: #2d3748; padding: 32px; text-align: center;">
                <h1 style="color: #ffffff; margin: 0; font-size: 24px;">{{.AppName}}</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 32px;">
                <h2 style="color: #1a1a2e; margin: 0 0 16px 0;">Reset Your Password</h2>
                <p style="color: #4a5568; line-height: 1.6;">
                    We received a request to reset the password for the account associated with <strong>{{.Email}}</strong>.
                    Click the button below to reset it. This link expires in <strong>1 hour</strong>.
                </p>
                <p style="text-align: center; margin: 28px 0;">
                    <a href="{{.ResetURL}}" style="display: inline-block; padding: 14px 28px; background-color: #2d3748; color: #ffffff; text-decoration: none; border-radius: 6px;">Reset Password</a>
                </p>
                <p style="color: #718096; font-size: 14px; line-height: 1.6;">
                    If you didn't request this, you can safely ignore this email.
                    If the button doesn't work, copy this link into your browser:<br>
                    <a href="{{.ResetURL}}" style="color: #667eea; word-break: break-all;">{{.ResetURL}}</a>
                </p>
            </td>
        </tr>
        <tr>
            <td style="background-color: #f8fafc; padding: 20px; text-align: center; border-top: 1px solid #e2e8f0;">
                <p style="color: #a0aec0; font-size: 12px; margin: 0;">This email was sent by {{.AppName}}</p>
            </td>
        </tr>
    </table>
</body>
</html>
`

// leadNotificationTemplate is the HTML template for new-lead alerts
const leadNotificationTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>New Enquiry</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 8px; overflow: hidden;">
        <tr>
            <td style="background-color: #2d3748; padding: 32px; text-align: center;">
                <h1 style="color: #ffffff; margin: 0; font-size: 24px;">{{.AppName}}</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 32px;">
                <h2 style="color: #1a1a2e; margin: 0 0 16px 0;">New customer enquiry</h2>
                <table style="width: 100%; border-collapse: collapse; color: #4a5568;">
                    <tr><td style="padding: 6px 0; width: 100px;"><strong>Name</strong></td><td>{{.Name}}</td></tr>
                    <tr><td style="padding: 6px 0;"><strong>Email</strong></td><td>{{.Email}}</td></tr>
                    <tr><td style="padding: 6px 0;"><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
                    <tr><td style="padding: 6px 0;"><strong>Source</strong></td><td>{{.Source}}</td></tr>
                </table>
                <p style="color: #4a5568; line-height: 1.6; border-left: 3px solid #e2e8f0; padding-left: 12px; margin-top: 20px;">{{.Message}}</p>
            </td>
        </tr>
        <tr>
            <td style="background-color: #f8fafc; padding: 20px; text-align: center; border-top: 1px solid #e2e8f0;">
                <p style="color: #a0aec0; font-size: 12px; margin: 0;">This email was sent by {{.AppName}}</p>
            </td>
        </tr>
    </table>
</body>
</html>
`
