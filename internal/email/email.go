// Package email provides email sending functionality
package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/johanstjernquist/portfolio-backend/internal/repository"
)

// Config holds email configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
	UseTLS   bool

	// Operator address that receives contact form alerts
	ContactRecipient string
}

// Service handles email sending
type Service struct {
	config    *Config
	templates map[string]*template.Template
}

// NewService creates a new email service
func NewService(config *Config) *Service {
	s := &Service{
		config:    config,
		templates: make(map[string]*template.Template),
	}
	s.loadTemplates()
	return s
}

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	Body     string
	HTMLBody string
}

// ContactEmailData holds data for contact form emails
type ContactEmailData struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	Submitted string
}

// loadTemplates loads all email templates
func (s *Service) loadTemplates() {

	// Operator alert for a new contact form submission
	s.templates["contact_notification"] = template.Must(template.New("contact_notification").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f8fafc; padding: 24px; border-radius: 0 0 8px 8px; }
        .detail-card { background: white; border-radius: 8px; padding: 20px; margin: 20px 0; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .message-box { background: white; border-left: 4px solid #2563eb; padding: 20px; margin: 20px 0; border-radius: 0 8px 8px 0; white-space: pre-wrap; }
        .footer { text-align: center; color: #64748b; font-size: 12px; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>📨 New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="detail-card">
                <p><strong>Name:</strong> {{.Name}}</p>
                <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
                <p><strong>Subject:</strong> {{.Subject}}</p>
            </div>

            <div class="message-box">{{.Message}}</div>
        </div>
        <div class="footer">
            <p>Sent from the portfolio contact form • {{.Submitted}}</p>
        </div>
    </div>
</body>
</html>
`))

	// Auto-acknowledgement for the submitter
	s.templates["auto_reply"] = template.Must(template.New("auto_reply").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f8fafc; padding: 24px; border-radius: 0 0 8px 8px; }
        .summary-card { background: white; border-radius: 8px; padding: 20px; margin: 20px 0; }
        .footer { text-align: center; color: #64748b; font-size: 12px; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank you for your message!</h1>
        </div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>Thank you for reaching out through my portfolio website. I've received your message about "{{.Subject}}" and will get back to you as soon as possible.</p>

            <div class="summary-card">
                <h3>Your Message Summary</h3>
                <p><strong>Subject:</strong> {{.Subject}}</p>
                <p><strong>Submitted on:</strong> {{.Submitted}}</p>
            </div>

            <p>I typically respond within 24-48 hours.</p>
            <p>Best regards,<br>Johan Nilsen Stjernquist</p>
        </div>
        <div class="footer">
            <p>This is an automated response from johancv.com</p>
        </div>
    </div>
</body>
</html>
`))
}

// SendContactNotification sends the operator alert for a new submission.
// Reply-To is set to the submitter so a response is one click away.
func (s *Service) SendContactNotification(contact *repository.Contact) error {
	if s.config.ContactRecipient == "" {
		log.Println("No contact recipient configured, skipping notification")
		return nil
	}

	data := ContactEmailData{
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		Submitted: contact.CreatedAt.Format(time.RFC1123),
	}

	return s.sendWithTemplate(
		[]string{s.config.ContactRecipient},
		contact.Email,
		fmt.Sprintf("Portfolio Contact: %s", contact.Subject),
		"contact_notification",
		data,
	)
}

// SendAutoReply sends the acknowledgement back to the submitter.
func (s *Service) SendAutoReply(contact *repository.Contact) error {
	data := ContactEmailData{
		Name:      contact.Name,
		Subject:   contact.Subject,
		Submitted: contact.CreatedAt.Format(time.RFC1123),
	}

	return s.sendWithTemplate(
		[]string{contact.Email},
		"",
		"Thank you for your message - Johan Nilsen Stjernquist",
		"auto_reply",
		data,
	)
}

func (s *Service) sendWithTemplate(to []string, replyTo, subject, templateName string, data interface{}) error {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return fmt.Errorf("template not found: %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	return s.Send(&Email{
		To:       to,
		ReplyTo:  replyTo,
		Subject:  subject,
		HTMLBody: body.String(),
	})
}

// Send sends an email
func (s *Service) Send(email *Email) error {
	if s.config.Host == "" {
		log.Println("Email not configured, skipping send")
		return nil
	}

	// Build message
	var msg bytes.Buffer

	// Headers
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(email.To, ", ")))
	if email.ReplyTo != "" {
		msg.WriteString(fmt.Sprintf("Reply-To: %s\r\n", email.ReplyTo))
	}
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody != "" {
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.HTMLBody)
	} else {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.Body)
	}

	// Create auth
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	if s.config.UseTLS {
		// TLS connection
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
		}

		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("TLS dial error: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			return fmt.Errorf("SMTP client error: %w", err)
		}
		defer client.Close()

		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("auth error: %w", err)
		}

		if err = client.Mail(s.config.From); err != nil {
			return fmt.Errorf("mail error: %w", err)
		}

		for _, rcpt := range email.To {
			if err = client.Rcpt(rcpt); err != nil {
				return fmt.Errorf("rcpt error: %w", err)
			}
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("data error: %w", err)
		}

		_, err = w.Write(msg.Bytes())
		if err != nil {
			return fmt.Errorf("write error: %w", err)
		}

		err = w.Close()
		if err != nil {
			return fmt.Errorf("close error: %w", err)
		}

		return client.Quit()
	}

	// Non-TLS
	return smtp.SendMail(addr, auth, s.config.From, email.To, msg.Bytes())
}
