package domain

import (
	"errors"
	"time"
)

// PaymentMode is how the customer settled a sale.
type PaymentMode string

const (
	PaymentCash PaymentMode = "cash"
	PaymentUPI  PaymentMode = "upi"
	PaymentCard PaymentMode = "card"
)

var ErrSaleNotFound = errors.New("sale not found")
var ErrMissingCustomer = errors.New("customer name and mobile are required")

// ErrDuplicateSubmission signals that a sale with the same idempotency key
// was inserted concurrently; the caller receives the already stored sale.
var ErrDuplicateSubmission = errors.New("sale already recorded for idempotency key")

// SaleItem is one sold line within a completed sale.
type SaleItem struct {
	TireID    string  `json:"tire_id" bson:"tire_id"`
	Brand     string  `json:"tire_brand" bson:"tire_brand"`
	TireSize  string  `json:"tire_size" bson:"tire_size"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	// CostPrice is the inventory purchase price at time of sale,
	// captured so profit reports survive later price changes.
	CostPrice  float64 `json:"-" bson:"cost_price"`
	TotalPrice float64 `json:"total_price" bson:"total_price"`
}

// Sale is a completed, persisted bill.
type Sale struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	InvoiceID      string       `json:"invoice_id" bson:"invoice_id"`
	CustomerName   string       `json:"customer_name" bson:"customer_name"`
	CustomerMobile string       `json:"customer_mobile" bson:"customer_mobile"`
	Subtotal       float64      `json:"subtotal" bson:"subtotal"`
	DiscountType   DiscountKind `json:"discount_type,omitempty" bson:"discount_type,omitempty"`
	DiscountValue  float64      `json:"discount_value" bson:"discount_value"`
	DiscountAmount float64      `json:"discount_amount" bson:"discount_amount"`
	TotalAmount    float64      `json:"total_amount" bson:"total_amount"`
	Notes          string       `json:"notes,omitempty" bson:"notes,omitempty"`
	PaymentMode    PaymentMode  `json:"payment_mode" bson:"payment_mode"`
	SaleDate       time.Time    `json:"sale_date" bson:"sale_date"`
	Items          []SaleItem   `json:"items" bson:"items"`
	IdempotencyKey string       `json:"-" bson:"idempotency_key,omitempty"`
}

// CostTotal is the inventory cost of everything on the bill.
func (s *Sale) CostTotal() float64 {
	var cost float64
	for _, it := range s.Items {
		cost += it.CostPrice * float64(it.Quantity)
	}
	return cost
}

// Profit is revenue after discount minus inventory cost.
func (s *Sale) Profit() float64 {
	return s.TotalAmount - s.CostTotal()
}

// ItemCount is the number of physical tires on the bill.
func (s *Sale) ItemCount() int {
	var n int
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}
