package domain

import (
	"errors"
	"time"
)

// PaymentStatus tracks whether a supplier purchase has been settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

var ErrPurchaseNotFound = errors.New("purchase not found")
var ErrMissingSupplier = errors.New("supplier name is required")

// PurchaseItem is one restocked line within a supplier purchase.
type PurchaseItem struct {
	TireID        string  `json:"tire_id" bson:"tire_id"`
	Brand         string  `json:"tire_brand" bson:"tire_brand"`
	TireSize      string  `json:"tire_size" bson:"tire_size"`
	Quantity      int     `json:"quantity" bson:"quantity"`
	PurchasePrice float64 `json:"purchase_price" bson:"purchase_price"`
	TotalPrice    float64 `json:"total_price" bson:"total_price"`
}

// Purchase is a recorded supplier restock.
type Purchase struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	SupplierName  string         `json:"supplier_name" bson:"supplier_name"`
	TotalAmount   float64        `json:"total_amount" bson:"total_amount"`
	PurchaseDate  time.Time      `json:"purchase_date" bson:"purchase_date"`
	PaymentStatus PaymentStatus  `json:"payment_status" bson:"payment_status"`
	Items         []PurchaseItem `json:"items" bson:"items"`
}
