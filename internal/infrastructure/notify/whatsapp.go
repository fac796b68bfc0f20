package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config carries the WhatsApp gateway credentials.
type Config struct {
	AccountSID string
	AuthToken  string
	From       string // sender number, e.g. whatsapp:+14155238886
	BaseURL    string // override for tests; empty means the Twilio API
}

// WhatsAppNotifier delivers invoice notifications through a Twilio-style
// messaging gateway. It implements ports.Notifier.
type WhatsAppNotifier struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

func NewWhatsAppNotifier(cfg Config, log zerolog.Logger) *WhatsAppNotifier {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.twilio.com"
	}
	return &WhatsAppNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
		log:    log,
	}
}

// Send posts the invoice message to the customer's WhatsApp number.
func (n *WhatsAppNotifier) Send(ctx context.Context, delivery ports.InvoiceDelivery) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.cfg.BaseURL, n.cfg.AccountSID)

	form := url.Values{}
	form.Set("From", n.cfg.From)
	form.Set("To", "whatsapp:"+delivery.CustomerMobile)
	form.Set("Body", delivery.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(n.cfg.AccountSID, n.cfg.AuthToken)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	n.log.Info().
		Str("invoice_id", delivery.InvoiceID).
		Str("to", delivery.CustomerMobile).
		Msg("whatsapp invoice sent")
	return nil
}

var _ ports.Notifier = (*WhatsAppNotifier)(nil)
