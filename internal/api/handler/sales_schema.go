package handler

type saleItemRequest struct {
	TireID   string `json:"tire_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type createSaleRequest struct {
	CustomerName   string            `json:"customer_name"   validate:"required"`
	CustomerMobile string            `json:"customer_mobile" validate:"required,min=10"`
	PaymentMode    string            `json:"payment_mode"    validate:"required,oneof=cash upi card"`
	DiscountType   string            `json:"discount_type,omitempty"  validate:"omitempty,oneof=flat percent"`
	DiscountValue  float64           `json:"discount_value,omitempty" validate:"omitempty,gte=0"`
	Notes          string            `json:"notes,omitempty"`
	Items          []saleItemRequest `json:"items" validate:"required,min=1,dive"`
}
