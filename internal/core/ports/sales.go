package ports

import (
	"context"
	"time"

	"github.com/tireshop/pos-system/internal/core/domain"
)

// SaleItemInput is one requested bill line. The unit price is always
// resolved server-side from the inventory selling price.
type SaleItemInput struct {
	TireID   string
	Quantity int
}

// CreateSaleInput carries everything needed to record a sale.
type CreateSaleInput struct {
	CustomerName   string
	CustomerMobile string
	PaymentMode    string
	DiscountType   string // "flat", "percent", or empty
	DiscountValue  float64
	Notes          string
	Items          []SaleItemInput
	// IdempotencyKey, when non-empty, makes a replayed submission return
	// the previously created sale instead of billing twice.
	IdempotencyKey string
}

// ListSalesFilter pages through sales history, newest first.
type ListSalesFilter struct {
	Skip  int
	Limit int
}

// SalesRepository defines persistence operations for sales.
type SalesRepository interface {
	Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	FindByID(ctx context.Context, id string) (*domain.Sale, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Sale, error)
	List(ctx context.Context, filter ListSalesFilter) ([]*domain.Sale, error)
	// ListByDateRange returns sales with sale_date in [from, to).
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Sale, error)
}

// SalesService defines use-case operations for billing.
type SalesService interface {
	CreateSale(ctx context.Context, input CreateSaleInput) (*domain.Sale, error)
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
	History(ctx context.Context, filter ListSalesFilter) ([]*domain.Sale, error)
	// Report returns sales with sale_date between from and to inclusive.
	Report(ctx context.Context, from, to time.Time) ([]*domain.Sale, error)
}
