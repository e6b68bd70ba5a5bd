package email

import (
	"fmt"
	"log"

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

// SendWelcomeEmail greets a freshly registered user with their referral code
func (s *Service) SendWelcomeEmail(toEmail, toName, referralCode string) error {
	subject := "Welcome to FanVault!"
	shareURL := fmt.Sprintf("%s/join?ref=%s", s.baseURL, referralCode)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to FanVault!</h2>
			<p>Hi %s,</p>
			<p>Your account is ready. Your personal referral code is:</p>
			<p style="font-size: 24px; font-weight: bold; letter-spacing: 2px;">%s</p>
			<p>Share it with creators you know and earn a commission on everything they make:</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Share Your Link</a></p>
			<p>Thanks,<br>The FanVault Team</p>
		</body>
		</html>
	`, toName, referralCode, shareURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your FanVault account is ready. Your personal referral code is: %s

Share it with creators you know and earn a commission on everything they make:

%s

Thanks,
The FanVault Team
	`, toName, referralCode, shareURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, shareURL)
}

// PayoutProcessed notifies a referrer that a commission payout went out.
// Satisfies the payout notifier used by the commission batch.
func (s *Service) PayoutProcessed(toEmail, toName string, amount float64, currency, reference string) error {
	subject := fmt.Sprintf("Your %.2f %s referral payout is on its way", amount, currency)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payout Processed</h2>
			<p>Hi %s,</p>
			<p>We just sent your referral commission payout of <strong>%.2f %s</strong>.</p>
			<p>Payout reference: <code>%s</code></p>
			<p><a href="%s/earnings" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Your Earnings</a></p>
			<p>Thanks,<br>The FanVault Team</p>
		</body>
		</html>
	`, toName, amount, currency, reference, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

We just sent your referral commission payout of %.2f %s.

Payout reference: %s

View your earnings: %s/earnings

Thanks,
The FanVault Team
	`, toName, amount, currency, reference, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, reference)
}

// SendStatementEmail tells a referrer their monthly commission statement is ready
func (s *Service) SendStatementEmail(toEmail, toName, period, downloadURL string) error {
	subject := fmt.Sprintf("Your FanVault commission statement for %s", period)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Commission Statement Ready</h2>
			<p>Hi %s,</p>
			<p>Your commission statement for <strong>%s</strong> is ready.</p>
			<p><a href="%s" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Download Statement</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p>Thanks,<br>The FanVault Team</p>
		</body>
		</html>
	`, toName, period, downloadURL, downloadURL, downloadURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your commission statement for %s is ready.

Download it here:

%s

Thanks,
The FanVault Team
	`, toName, period, downloadURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, downloadURL)
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
func (s *Service) logEmailToConsole(toEmail, toName, subject, detail string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Detail: %s", detail)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}
