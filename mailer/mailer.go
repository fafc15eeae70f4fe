// Package mailer is the outbound-mail collaborator. Delivery is best effort
// everywhere: callers log failures and carry on, because notification is a
// side effect of the operations that trigger it, never their contract.
package mailer

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/config"
)

// Mailer emits the site's notification intents as plain subject+body mail.
type Mailer interface {
	// Enabled reports whether SMTP credentials are configured. When false,
	// sends are silent no-ops and callers may fall back to debug behavior
	// (e.g. returning the OTP in the API response).
	Enabled() bool

	SendStudentOTP(to, code string) error
	SendBlogPendingAlert(title, authorName, authorType, authorEmail, preview string) error
	SendBlogApproved(to, authorName, title string) error
	SendContactNotice(name, email, subject, message string) error
	SendContactThanks(to, name, subject, message string) error
	SendTest() error
}

type smtpMailer struct {
	cfg        config.MailConfig
	adminEmail string
}

// NewSMTP builds the SMTP mailer. adminEmail receives the pending-post and
// contact-form notices; when empty those intents are skipped.
func NewSMTP(cfg config.MailConfig, adminEmail string) Mailer {
	return &smtpMailer{cfg: cfg, adminEmail: adminEmail}
}

func (m *smtpMailer) Enabled() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

func (m *smtpMailer) send(to, subject, body string) error {
	if !m.Enabled() {
		log.Printf("INFO: [Mailer] Mail not configured, skipping %q to %s", subject, to)
		return nil
	}
	if to == "" {
		log.Printf("WARN: [Mailer] No recipient for %q, skipping", subject)
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, to, err)
	}
	return nil
}

func (m *smtpMailer) SendStudentOTP(to, code string) error {
	body := fmt.Sprintf("Your OTP is: %s\nIt will expire in 10 minutes.", code)
	return m.send(to, "Your student login OTP", body)
}

func (m *smtpMailer) SendBlogPendingAlert(title, authorName, authorType, authorEmail, preview string) error {
	if authorEmail == "" {
		authorEmail = "N/A"
	}
	body := fmt.Sprintf(
		"A new blog post has been submitted and is pending approval.\n\n"+
			"Title: %s\n"+
			"Author: %s (%s)\n"+
			"Author email: %s\n\n"+
			"Preview:\n%s...\n\n"+
			"Log in to the admin panel to review and approve:\n"+
			"URL: /admin/blogs?status=pending",
		title, authorName, authorType, authorEmail, preview)
	return m.send(m.adminEmail, fmt.Sprintf("New blog post pending approval: %s", title), body)
}

func (m *smtpMailer) SendBlogApproved(to, authorName, title string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your blog post titled \"%s\" has been approved by the Department of Computer Science.\n\n"+
			"It is now visible on the website.\n\n"+
			"Regards,\nDepartment of Computer Science",
		authorName, title)
	return m.send(to, "Your blog has been approved", body)
}

func (m *smtpMailer) SendContactNotice(name, email, subject, message string) error {
	body := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	return m.send(m.adminEmail, fmt.Sprintf("Contact: %s", subject), body)
}

func (m *smtpMailer) SendContactThanks(to, name, subject, message string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for reaching out to the Computer Science Department. "+
			"We have received your message and will get back to you as soon as possible.\n\n"+
			"Subject: %s\n"+
			"Your message:\n%s\n\n"+
			"Regards,\nDepartment of Computer Science",
		name, subject, message)
	return m.send(to, "Thank you for contacting Computer Science Department", body)
}

func (m *smtpMailer) SendTest() error {
	return m.send(m.adminEmail, "Test email from CSD website", "This is a test email from your CSD website.")
}
