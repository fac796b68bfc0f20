package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/api/metrics"
	"github.com/tireshop/pos-system/internal/core/domain"
	"github.com/tireshop/pos-system/internal/core/ports"
)

// InvoiceSequencer allocates sequential invoice numbers for a given day.
type InvoiceSequencer interface {
	Next(ctx context.Context, day time.Time) (int64, error)
}

// SalesService implements billing use cases.
type SalesService struct {
	salesRepo     ports.SalesRepository
	inventoryRepo ports.InventoryRepository
	sequencer     InvoiceSequencer
	logger        zerolog.Logger
	now           func() time.Time
}

func NewSalesService(
	salesRepo ports.SalesRepository,
	inventoryRepo ports.InventoryRepository,
	sequencer InvoiceSequencer,
	logger zerolog.Logger,
) *SalesService {
	return &SalesService{
		salesRepo:     salesRepo,
		inventoryRepo: inventoryRepo,
		sequencer:     sequencer,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateSale validates the requested bill against current stock, computes
// totals, allocates an invoice number, persists the sale, and decrements
// inventory. If an idempotency key is provided and already seen, the
// previously created sale is returned without side effects.
func (s *SalesService) CreateSale(ctx context.Context, input ports.CreateSaleInput) (*domain.Sale, error) {
	if input.IdempotencyKey != "" {
		existing, err := s.salesRepo.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		switch {
		case err == nil && existing != nil:
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("invoice_id", existing.InvoiceID).Msg("idempotent replay")
			return existing, nil
		case err != nil && !errors.Is(err, domain.ErrSaleNotFound):
			// A failed lookup must not fall through to a fresh insert: the
			// retry that follows a transient failure is exactly the request
			// the key is meant to guard against.
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
	}

	if input.CustomerName == "" || input.CustomerMobile == "" {
		return nil, domain.ErrMissingCustomer
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyDraft
	}

	// Assemble the bill through the draft calculator so duplicate lines
	// and stock shortfalls are rejected before anything is written.
	draft := domain.NewBillDraft()
	tires := make(map[string]*domain.Tire, len(input.Items))
	for _, item := range input.Items {
		tire, err := s.inventoryRepo.FindByID(ctx, item.TireID)
		if err != nil {
			return nil, fmt.Errorf("create sale: %w", err)
		}
		if err := draft.AddItem(tire.ID, item.Quantity, tire.SellingPrice, tire.Quantity); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return nil, fmt.Errorf("%w for %s %s: available %d", err, tire.Brand, tire.TireSize, tire.Quantity)
			}
			return nil, err
		}
		tires[tire.ID] = tire
	}
	draft.SetDiscount(domain.DiscountKind(input.DiscountType), input.DiscountValue)

	now := s.now().UTC()
	seq, err := s.sequencer.Next(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("invoice sequence allocation failed")
		return nil, fmt.Errorf("create sale: %w", err)
	}

	sale := &domain.Sale{
		InvoiceID:      fmt.Sprintf("INV%s%04d", now.Format("20060102"), seq),
		CustomerName:   input.CustomerName,
		CustomerMobile: input.CustomerMobile,
		Subtotal:       draft.Subtotal(),
		DiscountType:   domain.DiscountKind(input.DiscountType),
		DiscountValue:  input.DiscountValue,
		DiscountAmount: draft.DiscountAmount(),
		TotalAmount:    draft.Total(),
		Notes:          input.Notes,
		PaymentMode:    domain.PaymentMode(input.PaymentMode),
		SaleDate:       now,
		IdempotencyKey: input.IdempotencyKey,
	}
	for _, line := range draft.Items() {
		tire := tires[line.TireID]
		sale.Items = append(sale.Items, domain.SaleItem{
			TireID:     line.TireID,
			Brand:      tire.Brand,
			TireSize:   tire.TireSize,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			CostPrice:  tire.PurchasePrice,
			TotalPrice: line.LineTotal,
		})
	}

	created, err := s.salesRepo.Create(ctx, sale)
	if errors.Is(err, domain.ErrDuplicateSubmission) && created != nil {
		// A concurrent submission with the same key won the insert race.
		// Its sale already decremented stock, so return it without side
		// effects of our own.
		s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("invoice_id", created.InvoiceID).Msg("idempotent replay after insert race")
		return created, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("invoice_id", sale.InvoiceID).Msg("failed to persist sale")
		return nil, err
	}

	for _, line := range draft.Items() {
		if _, err := s.inventoryRepo.AdjustQuantity(ctx, line.TireID, -line.Quantity); err != nil {
			// The sale is already persisted; log and continue so the bill
			// is not lost, stock is reconciled by the next purchase entry.
			s.logger.Error().Err(err).Str("tire_id", line.TireID).Str("invoice_id", created.InvoiceID).Msg("stock decrement failed after sale")
		}
	}

	metrics.SalesCreatedTotal.WithLabelValues(string(created.PaymentMode)).Inc()
	metrics.SalesRevenue.Add(created.TotalAmount)
	s.logger.Info().
		Str("invoice_id", created.InvoiceID).
		Str("customer", created.CustomerName).
		Float64("total", created.TotalAmount).
		Msg("sale recorded")

	return created, nil
}

func (s *SalesService) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	return s.salesRepo.FindByID(ctx, id)
}

func (s *SalesService) History(ctx context.Context, filter ports.ListSalesFilter) ([]*domain.Sale, error) {
	if filter.Limit <= 0 || filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.salesRepo.List(ctx, filter)
}

// Report returns sales with sale_date between from and to inclusive.
func (s *SalesService) Report(ctx context.Context, from, to time.Time) ([]*domain.Sale, error) {
	return s.salesRepo.ListByDateRange(ctx, from, to.AddDate(0, 0, 1))
}
