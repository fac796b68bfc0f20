package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/core/domain"
	"github.com/tireshop/pos-system/internal/core/ports"
)

const maxPageSize = 100

// InventoryService implements stock management use cases.
type InventoryService struct {
	repo   ports.InventoryRepository
	logger zerolog.Logger
}

func NewInventoryService(repo ports.InventoryRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

func (s *InventoryService) Create(ctx context.Context, input ports.TireInput) (*domain.Tire, error) {
	tire := &domain.Tire{
		Brand:         input.Brand,
		TireSize:      input.TireSize,
		TireType:      domain.TireType(input.TireType),
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
		SupplierName:  input.SupplierName,
		PurchaseDate:  input.PurchaseDate,
	}

	created, err := s.repo.Create(ctx, tire)
	if err != nil {
		s.logger.Error().Err(err).Str("brand", input.Brand).Msg("failed to create stock line")
		return nil, err
	}

	s.logger.Info().Str("tire_id", created.ID).Str("brand", created.Brand).Str("size", created.TireSize).Msg("stock line created")
	return created, nil
}

func (s *InventoryService) Get(ctx context.Context, id string) (*domain.Tire, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InventoryService) List(ctx context.Context, filter ports.ListTiresFilter) ([]*domain.Tire, error) {
	if filter.Limit <= 0 || filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *InventoryService) Update(ctx context.Context, id string, update ports.TireUpdate) (*domain.Tire, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("tire_id", id).Msg("stock line updated")
	return updated, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("tire_id", id).Msg("stock line deleted")
	return nil
}

// InventoryReport returns the complete stock list for reporting.
func (s *InventoryService) InventoryReport(ctx context.Context) ([]*domain.Tire, error) {
	return s.repo.List(ctx, ports.ListTiresFilter{Limit: 10000})
}
