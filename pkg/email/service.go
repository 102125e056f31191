package email

import (
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendWelcomeEmail sends a welcome email after registration
func (s *Service) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Welcome to ReplyFlow!"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to ReplyFlow!</h2>
			<p>Hi %s,</p>
			<p>Your account is ready. Connect your inbox and let ReplyFlow handle the busywork.</p>
			<h3>Get Started:</h3>
			<ul>
				<li>Generate smart reply suggestions for any email</li>
				<li>Draft full replies in the tone you choose</li>
				<li>Summarize and categorize long threads in one click</li>
			</ul>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Dashboard</a></p>
			<p>Thanks,<br>The ReplyFlow Team</p>
		</body>
		</html>
	`, toName, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your account is ready. Connect your inbox and let ReplyFlow handle the busywork.

Get Started:
- Generate smart reply suggestions for any email
- Draft full replies in the tone you choose
- Summarize and categorize long threads in one click

Visit your dashboard: %s/dashboard

Thanks,
The ReplyFlow Team
	`, toName, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	log.Printf("📧 [EMAIL] Welcome email to: %s <%s>", toName, toEmail)
	return nil
}

// SendTrialEndingSoonEmail reminds an account that its trial expires soon
func (s *Service) SendTrialEndingSoonEmail(toEmail, toName string, trialEnd time.Time) error {
	upgradeURL := fmt.Sprintf("%s/upgrade", s.baseURL)

	subject := "Your ReplyFlow trial ends soon"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your trial is almost over</h2>
			<p>Hi %s,</p>
			<p>Your ReplyFlow trial ends on <strong>%s</strong>. After that your account moves to the free plan with 2 AI actions per day.</p>
			<p>Upgrade now to keep your full daily limits:</p>
			<p><a href="%s" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Upgrade Now</a></p>
			<p>Thanks,<br>The ReplyFlow Team</p>
		</body>
		</html>
	`, toName, trialEnd.Format("January 2, 2006"), upgradeURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your ReplyFlow trial ends on %s. After that your account moves to the free plan with 2 AI actions per day.

Upgrade now to keep your full daily limits: %s

Thanks,
The ReplyFlow Team
	`, toName, trialEnd.Format("January 2, 2006"), upgradeURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	return s.logEmailToConsole(toEmail, toName, subject, upgradeURL)
}

// SendPasswordResetEmail sends a password reset link with the given token
func (s *Service) SendPasswordResetEmail(toEmail, toName, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, resetToken)

	subject := "Reset your ReplyFlow password"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset</h2>
			<p>Hi %s,</p>
			<p>We received a request to reset your ReplyFlow password. Click the button below to choose a new one. The link expires in 1 hour.</p>
			<p><a href="%s" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Reset Password</a></p>
			<p>If you didn't request this, you can safely ignore this email.</p>
			<p>Thanks,<br>The ReplyFlow Team</p>
		</body>
		</html>
	`, toName, resetURL)

	plainText := fmt.Sprintf(`
Hi %s,

We received a request to reset your ReplyFlow password. Open the link below to choose a new one. The link expires in 1 hour.

%s

If you didn't request this, you can safely ignore this email.

Thanks,
The ReplyFlow Team
	`, toName, resetURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	return s.logEmailToConsole(toEmail, toName, subject, resetURL)
}

// SendRawEmail sends an email with custom subject and body content.
// Uses SendGrid in production, logs to console in development.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}

	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}
