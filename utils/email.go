// utils/email.go
package utils

import (
	"ak-storefront/models"
	"fmt"
	"log"
	"strings"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers a single email.
type Mailer interface {
	SendEmail(toEmail, subject, htmlContent string) error
}

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new Postmark EmailService
func NewEmailService(apiToken, sender string) *EmailService {
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendGridService sends email through the SendGrid v3 API.
type SendGridService struct {
	client *sendgrid.Client
	sender string
}

// NewSendGridService builds a SendGridService for apiKey.
func NewSendGridService(apiKey, sender string) *SendGridService {
	return &SendGridService{client: sendgrid.NewSendClient(apiKey), sender: sender}
}

// SendEmail sends htmlContent to toEmail.
func (s *SendGridService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("AK Modern", s.sender)
	to := mail.NewEmail("", toEmail)
	msg := mail.NewSingleEmail(from, subject, to, stripTags(htmlContent), htmlContent)

	resp, err := s.client.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("failed to send email: sendgrid returned %d", resp.StatusCode)
	}
	return nil
}

// LogMailer only logs outgoing mail. It is used when no provider is configured.
type LogMailer struct{}

func (LogMailer) SendEmail(toEmail, subject, _ string) error {
	log.Printf("Email to %s skipped (no provider): %s", toEmail, subject)
	return nil
}

// Notifier sends storefront notifications over a Mailer.
type Notifier struct {
	Mailer Mailer
}

// NewNotifier picks a Mailer for provider ("postmark", "sendgrid" or anything else for none).
func NewNotifier(provider, postmarkToken, sendgridKey, sender string) *Notifier {
	switch provider {
	case "postmark":
		if postmarkToken != "" {
			return &Notifier{Mailer: NewEmailService(postmarkToken, sender)}
		}
		log.Println("POSTMARK_API_TOKEN is not set, order emails are disabled")
	case "sendgrid":
		if sendgridKey != "" {
			return &Notifier{Mailer: NewSendGridService(sendgridKey, sender)}
		}
		log.Println("SENDGRID_API_KEY is not set, order emails are disabled")
	}
	return &Notifier{Mailer: LogMailer{}}
}

// SendOrderConfirmationEmail sends an order confirmation email to the customer
func (n *Notifier) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := fmt.Sprintf("Order Confirmation #%s", order.ID)
	return n.Mailer.SendEmail(toEmail, subject, OrderConfirmationHTML(order))
}

// OrderConfirmationHTML renders the body of the confirmation email.
func OrderConfirmationHTML(order models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<strong>Dear %s,</strong><br><br>", order.CustomerName)
	fmt.Fprintf(&b, "Thank you for your purchase! Your order (ID: %s) was placed on %s %s at %s.<br><br>", order.ID, order.Day, order.Date, order.Time)
	b.WriteString("<ul>")
	for _, it := range order.Items {
		fmt.Fprintf(&b, "<li>%s x%d: QAR %.2f</li>", it.Product.NameEn, it.Quantity, it.LineTotal())
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "Total Amount: <strong>QAR %.2f</strong><br>Payment Method: <strong>%s</strong><br>", order.Total, order.PaymentMethod)
	fmt.Fprintf(&b, "Delivery Address: %s<br><br>Thank you for shopping with us!", order.Address)
	return b.String()
}

func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
