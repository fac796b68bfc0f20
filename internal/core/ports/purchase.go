package ports

import (
	"context"
	"time"

	"github.com/tireshop/pos-system/internal/core/domain"
)

// PurchaseItemInput is one requested restock line.
type PurchaseItemInput struct {
	TireID        string
	Quantity      int
	PurchasePrice float64
}

// CreatePurchaseInput carries everything needed to record a supplier purchase.
type CreatePurchaseInput struct {
	SupplierName  string
	PurchaseDate  time.Time
	PaymentStatus string
	Items         []PurchaseItemInput
}

// PurchaseUpdate carries a partial update of the purchase header; item
// lines are immutable once recorded.
type PurchaseUpdate struct {
	SupplierName  *string
	PurchaseDate  *time.Time
	PaymentStatus *string
}

// ListPurchasesFilter pages through recorded purchases, newest first.
type ListPurchasesFilter struct {
	Skip  int
	Limit int
}

// PurchaseRepository defines persistence operations for supplier purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, p *domain.Purchase) (*domain.Purchase, error)
	FindByID(ctx context.Context, id string) (*domain.Purchase, error)
	List(ctx context.Context, filter ListPurchasesFilter) ([]*domain.Purchase, error)
	Update(ctx context.Context, id string, update PurchaseUpdate) (*domain.Purchase, error)
	Delete(ctx context.Context, id string) error
}

// PurchaseService defines use-case operations for restocking.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, input CreatePurchaseInput) (*domain.Purchase, error)
	GetPurchase(ctx context.Context, id string) (*domain.Purchase, error)
	List(ctx context.Context, filter ListPurchasesFilter) ([]*domain.Purchase, error)
	Update(ctx context.Context, id string, update PurchaseUpdate) (*domain.Purchase, error)
	Delete(ctx context.Context, id string) error
}
