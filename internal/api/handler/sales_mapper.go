package handler

import (
	"github.com/tireshop/pos-system/internal/core/ports"
)

// toCreateSaleInput maps the HTTP request to the service DTO.
func toCreateSaleInput(req createSaleRequest, idempotencyKey string) ports.CreateSaleInput {
	items := make([]ports.SaleItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.SaleItemInput{
			TireID:   it.TireID,
			Quantity: it.Quantity,
		})
	}

	return ports.CreateSaleInput{
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
		PaymentMode:    req.PaymentMode,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		Notes:          req.Notes,
		Items:          items,
		IdempotencyKey: idempotencyKey,
	}
}
