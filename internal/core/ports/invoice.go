package ports

import "context"

// InvoiceService renders and dispatches invoices for completed sales.
type InvoiceService interface {
	// GeneratePDF renders the invoice for a sale and returns the PDF bytes
	// together with a suggested filename.
	GeneratePDF(ctx context.Context, saleID string) ([]byte, string, error)
	// SendWhatsApp queues asynchronous invoice delivery to the customer's
	// WhatsApp number and returns without waiting for the send.
	SendWhatsApp(ctx context.Context, saleID, customerMobile string) error
}

// InvoiceDelivery is one queued WhatsApp dispatch.
type InvoiceDelivery struct {
	InvoiceID      string
	SaleID         string
	CustomerMobile string
	Message        string
}

// Notifier delivers a message over an external channel (WhatsApp).
type Notifier interface {
	Send(ctx context.Context, delivery InvoiceDelivery) error
}
