package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createTireRequest struct {
	Brand         string    `json:"brand"          validate:"required"`
	TireSize      string    `json:"tire_size"      validate:"required"`
	TireType      string    `json:"tire_type"      validate:"required,oneof=tube tubeless"`
	Quantity      int       `json:"quantity"       validate:"gte=0"`
	PurchasePrice float64   `json:"purchase_price" validate:"required,gt=0"`
	SellingPrice  float64   `json:"selling_price"  validate:"required,gt=0"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	PurchaseDate  time.Time `json:"purchase_date,omitempty"`
}

// updateTireRequest carries a partial update; absent fields are left untouched.
type updateTireRequest struct {
	Brand         *string    `json:"brand,omitempty"`
	TireSize      *string    `json:"tire_size,omitempty"`
	TireType      *string    `json:"tire_type,omitempty"      validate:"omitempty,oneof=tube tubeless"`
	Quantity      *int       `json:"quantity,omitempty"       validate:"omitempty,gte=0"`
	PurchasePrice *float64   `json:"purchase_price,omitempty" validate:"omitempty,gt=0"`
	SellingPrice  *float64   `json:"selling_price,omitempty"  validate:"omitempty,gt=0"`
	SupplierName  *string    `json:"supplier_name,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
}
