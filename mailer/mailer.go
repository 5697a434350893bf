// Package mailer sends transactional mail through SendGrid. Without an API
// key every send is a silent no-op, so local environments need no mail setup.
package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/sarelalush/Orel-site/config"
	"github.com/sarelalush/Orel-site/monitoring"
)

type Mailer struct {
	apiKey    string
	fromEmail string
	fromName  string
	log       *monitoring.Logger
}

func New(cfg *config.Config, log *monitoring.Logger) *Mailer {
	return &Mailer{
		apiKey:    cfg.Mail.SendgridKey,
		fromEmail: cfg.Mail.FromEmail,
		fromName:  cfg.Mail.FromName,
		log:       log,
	}
}

// SendOrderConfirmation mails the order reference and total to the buyer.
// Failures are logged, not propagated: a missed email never fails a checkout.
func (m *Mailer) SendOrderConfirmation(toEmail, toName, orderRef string, total float64) {
	if m.apiKey == "" {
		return
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("Order %s confirmed", orderRef)
	plain := fmt.Sprintf("Thanks for your order!\n\nOrder reference: %s\nTotal: %.2f\n", orderRef, total)
	html := fmt.Sprintf("<p>Thanks for your order!</p><p>Order reference: <b>%s</b><br>Total: <b>%.2f</b></p>", orderRef, total)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		m.log.Error("order confirmation mail failed", map[string]interface{}{"order_ref": orderRef, "error": err.Error()})
		return
	}
	if resp.StatusCode >= 400 {
		m.log.Error("order confirmation mail rejected", map[string]interface{}{"order_ref": orderRef, "status": resp.StatusCode})
	}
}
