package handler

import "time"

type purchaseItemRequest struct {
	TireID        string  `json:"tire_id"        validate:"required"`
	Quantity      int     `json:"quantity"       validate:"required,gte=1"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gt=0"`
}

type createPurchaseRequest struct {
	SupplierName  string                `json:"supplier_name" validate:"required"`
	PurchaseDate  time.Time             `json:"purchase_date,omitempty"`
	PaymentStatus string                `json:"payment_status,omitempty" validate:"omitempty,oneof=paid pending"`
	Items         []purchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

// updatePurchaseRequest changes header fields only; items are immutable.
type updatePurchaseRequest struct {
	SupplierName  *string    `json:"supplier_name,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	PaymentStatus *string    `json:"payment_status,omitempty" validate:"omitempty,oneof=paid pending"`
}
