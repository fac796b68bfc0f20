package domain

import "errors"

// DiscountKind selects how a bill discount is interpreted.
type DiscountKind string

const (
	DiscountFlat    DiscountKind = "flat"
	DiscountPercent DiscountKind = "percent"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")
var ErrInvalidPrice = errors.New("price must be greater than zero")
var ErrDuplicateItem = errors.New("item already in draft")
var ErrEmptyDraft = errors.New("draft has no items")

// Discount applies to a bill's subtotal. A percent discount interprets
// Value as 0-100; a flat discount subtracts Value directly.
type Discount struct {
	Kind  DiscountKind `json:"kind"`
	Value float64      `json:"value"`
}

// DraftItem is one product-quantity-price row within an in-progress draft.
type DraftItem struct {
	TireID    string  `json:"tire_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// BillDraft assembles a sale before submission. Items keep insertion order
// and at most one line may exist per tire; a second add for the same tire
// is rejected, never merged.
type BillDraft struct {
	items    []DraftItem
	discount Discount
}

// NewBillDraft returns an empty draft.
func NewBillDraft() *BillDraft {
	return &BillDraft{}
}

// AddItem appends a line to the draft after validating quantity, stock
// availability, and line uniqueness. The draft is left unchanged on error.
func (d *BillDraft) AddItem(tireID string, quantity int, unitPrice float64, available int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if d.contains(tireID) {
		return ErrDuplicateItem
	}
	if quantity > available {
		return ErrInsufficientStock
	}
	d.items = append(d.items, DraftItem{
		TireID:    tireID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice * float64(quantity),
	})
	return nil
}

// RemoveItem deletes the line for tireID. Removing an absent line is a no-op.
func (d *BillDraft) RemoveItem(tireID string) {
	for i, it := range d.items {
		if it.TireID == tireID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

// SetDiscount replaces the draft's discount. A non-positive value means
// no discount.
func (d *BillDraft) SetDiscount(kind DiscountKind, value float64) {
	d.discount = Discount{Kind: kind, Value: value}
}

// Items returns the draft lines in insertion order.
func (d *BillDraft) Items() []DraftItem {
	return d.items
}

// Subtotal is the unrounded sum of all line totals.
func (d *BillDraft) Subtotal() float64 {
	var sum float64
	for _, it := range d.items {
		sum += it.LineTotal
	}
	return sum
}

// DiscountAmount is the currency amount subtracted from the subtotal,
// clamped to [0, subtotal] so a bill can never total negative.
func (d *BillDraft) DiscountAmount() float64 {
	if d.discount.Value <= 0 {
		return 0
	}
	subtotal := d.Subtotal()
	var amount float64
	if d.discount.Kind == DiscountPercent {
		amount = subtotal * d.discount.Value / 100
	} else {
		amount = d.discount.Value
	}
	if amount > subtotal {
		return subtotal
	}
	return amount
}

// Total is the amount payable: subtotal minus discount.
func (d *BillDraft) Total() float64 {
	return d.Subtotal() - d.DiscountAmount()
}

func (d *BillDraft) contains(tireID string) bool {
	for _, it := range d.items {
		if it.TireID == tireID {
			return true
		}
	}
	return false
}

// PurchaseDraft assembles a supplier restock before submission. Unlike a
// bill it carries no discount and no stock ceiling, but every line needs
// a positive purchase price.
type PurchaseDraft struct {
	items []DraftItem
}

// NewPurchaseDraft returns an empty draft.
func NewPurchaseDraft() *PurchaseDraft {
	return &PurchaseDraft{}
}

// AddItem appends a restock line after validating quantity, price, and
// line uniqueness.
func (d *PurchaseDraft) AddItem(tireID string, quantity int, purchasePrice float64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if purchasePrice <= 0 {
		return ErrInvalidPrice
	}
	for _, it := range d.items {
		if it.TireID == tireID {
			return ErrDuplicateItem
		}
	}
	d.items = append(d.items, DraftItem{
		TireID:    tireID,
		Quantity:  quantity,
		UnitPrice: purchasePrice,
		LineTotal: purchasePrice * float64(quantity),
	})
	return nil
}

// RemoveItem deletes the line for tireID. Removing an absent line is a no-op.
func (d *PurchaseDraft) RemoveItem(tireID string) {
	for i, it := range d.items {
		if it.TireID == tireID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

// Items returns the draft lines in insertion order.
func (d *PurchaseDraft) Items() []DraftItem {
	return d.items
}

// Total is the unrounded sum of all line totals.
func (d *PurchaseDraft) Total() float64 {
	var sum float64
	for _, it := range d.items {
		sum += it.LineTotal
	}
	return sum
}
