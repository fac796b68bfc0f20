package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/core/ports"
	"github.com/tireshop/pos-system/pkg/invoice"
)

// DeliveryQueue abstracts the async notification dispatcher.
type DeliveryQueue interface {
	Enqueue(delivery ports.InvoiceDelivery)
}

// InvoiceService renders invoice PDFs and queues WhatsApp delivery.
type InvoiceService struct {
	salesRepo ports.SalesRepository
	renderer  *invoice.Renderer
	queue     DeliveryQueue
	logger    zerolog.Logger
}

func NewInvoiceService(
	salesRepo ports.SalesRepository,
	renderer *invoice.Renderer,
	queue DeliveryQueue,
	logger zerolog.Logger,
) *InvoiceService {
	return &InvoiceService{
		salesRepo: salesRepo,
		renderer:  renderer,
		queue:     queue,
		logger:    logger,
	}
}

// GeneratePDF renders the invoice for a sale and returns the PDF bytes
// with a suggested filename.
func (s *InvoiceService) GeneratePDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := s.salesRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, "", err
	}

	data, err := s.renderer.Render(sale)
	if err != nil {
		s.logger.Error().Err(err).Str("sale_id", saleID).Msg("invoice render failed")
		return nil, "", err
	}

	s.logger.Info().Str("invoice_id", sale.InvoiceID).Int("bytes", len(data)).Msg("invoice rendered")
	return data, fmt.Sprintf("invoice_%s.pdf", sale.InvoiceID), nil
}

// SendWhatsApp queues asynchronous invoice delivery. The mobile number
// defaults to the one recorded on the sale.
func (s *InvoiceService) SendWhatsApp(ctx context.Context, saleID, customerMobile string) error {
	sale, err := s.salesRepo.FindByID(ctx, saleID)
	if err != nil {
		return err
	}
	if customerMobile == "" {
		customerMobile = sale.CustomerMobile
	}

	s.queue.Enqueue(ports.InvoiceDelivery{
		InvoiceID:      sale.InvoiceID,
		SaleID:         sale.ID,
		CustomerMobile: customerMobile,
		Message:        fmt.Sprintf("Thank you for your purchase! Here is your invoice %s.", sale.InvoiceID),
	})

	s.logger.Info().Str("invoice_id", sale.InvoiceID).Msg("invoice delivery queued")
	return nil
}

var _ ports.InvoiceService = (*InvoiceService)(nil)
