package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tireshop/pos-system/internal/core/domain"
)

func testSale() *domain.Sale {
	return &domain.Sale{
		ID:             "s1",
		InvoiceID:      "INV202406150001",
		CustomerName:   "Ravi Kumar",
		CustomerMobile: "9876543210",
		Subtotal:       9100,
		DiscountType:   domain.DiscountPercent,
		DiscountValue:  10,
		DiscountAmount: 910,
		TotalAmount:    8190,
		PaymentMode:    domain.PaymentUPI,
		SaleDate:       time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		Items: []domain.SaleItem{
			{TireID: "t1", Brand: "MRF", TireSize: "185/65 R15", Quantity: 2, UnitPrice: 3600, TotalPrice: 7200},
			{TireID: "t2", Brand: "CEAT", TireSize: "145/80 R12", Quantity: 1, UnitPrice: 1900, TotalPrice: 1900},
		},
	}
}

func testShop() ShopInfo {
	return ShopInfo{
		Name:    "Sri Balaji Tyres",
		Address: "12 Market Road, Chennai",
		GSTIN:   "33ABCDE1234F1Z5",
		Phone:   "044-12345678",
		Email:   "billing@sribalajtyres.example",
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(testShop())

	pdf, err := r.Render(testSale())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output is not a PDF document")
	assert.Greater(t, len(pdf), 1000)
}

func TestRenderer_Render_NoDiscount(t *testing.T) {
	sale := testSale()
	sale.DiscountType = ""
	sale.DiscountValue = 0
	sale.DiscountAmount = 0
	sale.TotalAmount = sale.Subtotal

	r := NewRenderer(testShop())
	pdf, err := r.Render(sale)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestRenderer_Render_Deterministic(t *testing.T) {
	r := NewRenderer(testShop())

	first, err := r.Render(testSale())
	require.NoError(t, err)
	second, err := r.Render(testSale())
	require.NoError(t, err)

	// gofpdf embeds a creation timestamp, so compare lengths only.
	assert.Equal(t, len(first), len(second))
}
