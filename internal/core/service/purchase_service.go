package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/api/metrics"
	"github.com/tireshop/pos-system/internal/core/domain"
	"github.com/tireshop/pos-system/internal/core/ports"
)

// PurchaseService implements supplier restock use cases.
type PurchaseService struct {
	purchaseRepo  ports.PurchaseRepository
	inventoryRepo ports.InventoryRepository
	logger        zerolog.Logger
}

func NewPurchaseService(
	purchaseRepo ports.PurchaseRepository,
	inventoryRepo ports.InventoryRepository,
	logger zerolog.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo:  purchaseRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// CreatePurchase validates the restock lines, computes the total, persists
// the purchase, and increments inventory quantities.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input ports.CreatePurchaseInput) (*domain.Purchase, error) {
	if input.SupplierName == "" {
		return nil, domain.ErrMissingSupplier
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyDraft
	}

	draft := domain.NewPurchaseDraft()
	tires := make(map[string]*domain.Tire, len(input.Items))
	for _, item := range input.Items {
		tire, err := s.inventoryRepo.FindByID(ctx, item.TireID)
		if err != nil {
			return nil, fmt.Errorf("create purchase: %w", err)
		}
		if err := draft.AddItem(tire.ID, item.Quantity, item.PurchasePrice); err != nil {
			return nil, err
		}
		tires[tire.ID] = tire
	}

	status := domain.PaymentStatus(input.PaymentStatus)
	if status == "" {
		status = domain.PaymentPending
	}

	purchase := &domain.Purchase{
		SupplierName:  input.SupplierName,
		TotalAmount:   draft.Total(),
		PurchaseDate:  input.PurchaseDate,
		PaymentStatus: status,
	}
	for _, line := range draft.Items() {
		tire := tires[line.TireID]
		purchase.Items = append(purchase.Items, domain.PurchaseItem{
			TireID:        line.TireID,
			Brand:         tire.Brand,
			TireSize:      tire.TireSize,
			Quantity:      line.Quantity,
			PurchasePrice: line.UnitPrice,
			TotalPrice:    line.LineTotal,
		})
	}

	created, err := s.purchaseRepo.Create(ctx, purchase)
	if err != nil {
		s.logger.Error().Err(err).Str("supplier", input.SupplierName).Msg("failed to persist purchase")
		return nil, err
	}

	for _, line := range draft.Items() {
		if _, err := s.inventoryRepo.AdjustQuantity(ctx, line.TireID, line.Quantity); err != nil {
			s.logger.Error().Err(err).Str("tire_id", line.TireID).Str("purchase_id", created.ID).Msg("stock increment failed after purchase")
		}
	}

	metrics.PurchasesCreatedTotal.WithLabelValues(string(created.PaymentStatus)).Inc()
	s.logger.Info().
		Str("purchase_id", created.ID).
		Str("supplier", created.SupplierName).
		Float64("total", created.TotalAmount).
		Msg("purchase recorded")

	return created, nil
}

func (s *PurchaseService) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	return s.purchaseRepo.FindByID(ctx, id)
}

func (s *PurchaseService) List(ctx context.Context, filter ports.ListPurchasesFilter) ([]*domain.Purchase, error) {
	if filter.Limit <= 0 || filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.purchaseRepo.List(ctx, filter)
}

func (s *PurchaseService) Update(ctx context.Context, id string, update ports.PurchaseUpdate) (*domain.Purchase, error) {
	updated, err := s.purchaseRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("purchase_id", id).Msg("purchase updated")
	return updated, nil
}

func (s *PurchaseService) Delete(ctx context.Context, id string) error {
	if err := s.purchaseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("purchase_id", id).Msg("purchase deleted")
	return nil
}
