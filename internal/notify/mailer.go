package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"

	"github.com/dtroode/storefront-server/internal/model"
)

const purchaseSubject = "Your download verification code"

// emailSender is the part of the Resend emails service used here.
type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

var _ model.Notifier = (*Mailer)(nil)

// Mailer sends purchase emails through Resend.
type Mailer struct {
	emails emailSender
	from   string
}

func NewMailer(apiKey, senderEmail string) *Mailer {
	client := resend.NewClient(apiKey)
	return &Mailer{
		emails: client.Emails,
		from:   fmt.Sprintf("Support <%s>", senderEmail),
	}
}

func (m *Mailer) NotifyPurchase(ctx context.Context, notice model.PurchaseNotice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if notice.Email == "" {
		return fmt.Errorf("notice for order %s has no recipient", notice.OrderID)
	}

	_, err := m.emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{notice.Email},
		Subject: purchaseSubject,
		Html:    purchaseHTML(notice),
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func purchaseHTML(n model.PurchaseNotice) string {
	return fmt.Sprintf(
		`<h1>Order %s</h1><p>Thank you for purchasing %s.</p><p><a href="%s">Download %s</a></p>`,
		html.EscapeString(n.OrderID.String()),
		html.EscapeString(n.ProductName),
		html.EscapeString(n.DownloadURL),
		html.EscapeString(n.ProductName),
	)
}
