package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tireshop/pos-system/internal/core/ports"
)

func TestWhatsAppNotifier_Send(t *testing.T) {
	var gotPath, gotTo, gotBody, gotFrom string
	var gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(Config{
		AccountSID: "AC123",
		AuthToken:  "secret",
		From:       "whatsapp:+14155238886",
		BaseURL:    srv.URL,
	}, zerolog.Nop())

	err := n.Send(context.Background(), ports.InvoiceDelivery{
		InvoiceID:      "INV202406150001",
		CustomerMobile: "+919876543210",
		Message:        "Thank you for your purchase!",
	})
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "whatsapp:+919876543210", gotTo)
	assert.Equal(t, "whatsapp:+14155238886", gotFrom)
	assert.Equal(t, "Thank you for your purchase!", gotBody)
}

func TestWhatsAppNotifier_Send_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(Config{AccountSID: "AC123", BaseURL: srv.URL}, zerolog.Nop())

	err := n.Send(context.Background(), ports.InvoiceDelivery{CustomerMobile: "+919876543210"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestWhatsAppNotifier_DefaultBaseURL(t *testing.T) {
	n := NewWhatsAppNotifier(Config{AccountSID: "AC123"}, zerolog.Nop())
	assert.Equal(t, "https://api.twilio.com", n.cfg.BaseURL)
}
