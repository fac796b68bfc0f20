package ports

import (
	"context"
	"time"

	"github.com/tireshop/pos-system/internal/core/domain"
)

// ListTiresFilter carries the query parameters for listing inventory.
type ListTiresFilter struct {
	Search string // optional: partial case-insensitive match on brand or tire_size
	Skip   int
	Limit  int // capped at 100 by the service; <=0 means default
}

// TireInput carries all writable fields of a stock line.
type TireInput struct {
	Brand         string
	TireSize      string
	TireType      string
	Quantity      int
	PurchasePrice float64
	SellingPrice  float64
	SupplierName  string
	PurchaseDate  time.Time
}

// TireUpdate carries a partial update; nil fields are left untouched.
type TireUpdate struct {
	Brand         *string
	TireSize      *string
	TireType      *string
	Quantity      *int
	PurchasePrice *float64
	SellingPrice  *float64
	SupplierName  *string
	PurchaseDate  *time.Time
}

// InventoryRepository defines persistence operations for tire stock.
type InventoryRepository interface {
	Create(ctx context.Context, t *domain.Tire) (*domain.Tire, error)
	FindByID(ctx context.Context, id string) (*domain.Tire, error)
	List(ctx context.Context, filter ListTiresFilter) ([]*domain.Tire, error)
	Update(ctx context.Context, id string, update TireUpdate) (*domain.Tire, error)
	Delete(ctx context.Context, id string) error
	// AdjustQuantity atomically adds delta to the stock count. A negative
	// delta that would push the count below zero fails with
	// domain.ErrInsufficientStock and leaves the document unchanged.
	AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Tire, error)
	// ListLowStock returns stock lines with quantity strictly below threshold.
	ListLowStock(ctx context.Context, threshold int) ([]*domain.Tire, error)
}

// InventoryService defines use-case operations on inventory.
type InventoryService interface {
	Create(ctx context.Context, input TireInput) (*domain.Tire, error)
	Get(ctx context.Context, id string) (*domain.Tire, error)
	List(ctx context.Context, filter ListTiresFilter) ([]*domain.Tire, error)
	Update(ctx context.Context, id string, update TireUpdate) (*domain.Tire, error)
	Delete(ctx context.Context, id string) error
}
