package domain

import (
	"errors"
	"time"
)

// TireType distinguishes tube and tubeless stock.
type TireType string

const (
	TireTypeTube     TireType = "tube"
	TireTypeTubeless TireType = "tubeless"
)

var ErrTireNotFound = errors.New("tire not found")
var ErrInsufficientStock = errors.New("insufficient stock")

// Tire is a single stock line in the shop's inventory.
type Tire struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Brand         string    `json:"brand" bson:"brand"`
	TireSize      string    `json:"tire_size" bson:"tire_size"`
	TireType      TireType  `json:"tire_type" bson:"tire_type"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	PurchasePrice float64   `json:"purchase_price" bson:"purchase_price"`
	SellingPrice  float64   `json:"selling_price" bson:"selling_price"`
	SupplierName  string    `json:"supplier_name,omitempty" bson:"supplier_name,omitempty"`
	PurchaseDate  time.Time `json:"purchase_date" bson:"purchase_date"`
}
