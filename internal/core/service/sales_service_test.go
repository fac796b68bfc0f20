package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/core/domain"
	"github.com/tireshop/pos-system/internal/core/ports"
)

// --- shared stubs ---

type stubInventoryRepo struct {
	tires map[string]*domain.Tire
}

func newStubInventoryRepo(tires ...*domain.Tire) *stubInventoryRepo {
	r := &stubInventoryRepo{tires: make(map[string]*domain.Tire)}
	for _, t := range tires {
		copy := *t
		r.tires[t.ID] = &copy
	}
	return r
}

func (r *stubInventoryRepo) Create(_ context.Context, t *domain.Tire) (*domain.Tire, error) {
	if t.ID == "" {
		t.ID = fmt.Sprintf("t%d", len(r.tires)+1)
	}
	copy := *t
	r.tires[t.ID] = &copy
	return t, nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id string) (*domain.Tire, error) {
	t, ok := r.tires[id]
	if !ok {
		return nil, domain.ErrTireNotFound
	}
	copy := *t
	return &copy, nil
}

func (r *stubInventoryRepo) List(_ context.Context, _ ports.ListTiresFilter) ([]*domain.Tire, error) {
	out := make([]*domain.Tire, 0, len(r.tires))
	for _, t := range r.tires {
		copy := *t
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubInventoryRepo) Update(_ context.Context, id string, _ ports.TireUpdate) (*domain.Tire, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubInventoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tires[id]; !ok {
		return domain.ErrTireNotFound
	}
	delete(r.tires, id)
	return nil
}

func (r *stubInventoryRepo) AdjustQuantity(_ context.Context, id string, delta int) (*domain.Tire, error) {
	t, ok := r.tires[id]
	if !ok {
		return nil, domain.ErrTireNotFound
	}
	if t.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	t.Quantity += delta
	copy := *t
	return &copy, nil
}

func (r *stubInventoryRepo) ListLowStock(_ context.Context, threshold int) ([]*domain.Tire, error) {
	var out []*domain.Tire
	for _, t := range r.tires {
		if t.Quantity < threshold {
			copy := *t
			out = append(out, &copy)
		}
	}
	return out, nil
}

type stubSalesRepo struct {
	sales  []*domain.Sale
	nextID int
	// lookupErr makes FindByIdempotencyKey fail, as on a transient outage.
	lookupErr error
	// missNextLookup makes the next FindByIdempotencyKey report no match even
	// when one exists, opening the same window a concurrent insert would.
	missNextLookup bool
}

func (r *stubSalesRepo) Create(_ context.Context, s *domain.Sale) (*domain.Sale, error) {
	if s.IdempotencyKey != "" {
		for _, existing := range r.sales {
			if existing.IdempotencyKey == s.IdempotencyKey {
				return existing, domain.ErrDuplicateSubmission
			}
		}
	}
	r.nextID++
	if s.ID == "" {
		s.ID = fmt.Sprintf("s%d", r.nextID)
	}
	r.sales = append(r.sales, s)
	return s, nil
}

func (r *stubSalesRepo) FindByID(_ context.Context, id string) (*domain.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

func (r *stubSalesRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.Sale, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	if r.missNextLookup {
		r.missNextLookup = false
		return nil, domain.ErrSaleNotFound
	}
	for _, s := range r.sales {
		if s.IdempotencyKey == key {
			return s, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

func (r *stubSalesRepo) List(_ context.Context, filter ports.ListSalesFilter) ([]*domain.Sale, error) {
	out := make([]*domain.Sale, len(r.sales))
	for i, s := range r.sales {
		out[len(r.sales)-1-i] = s
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *stubSalesRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]*domain.Sale, error) {
	var out []*domain.Sale
	for _, s := range r.sales {
		if !s.SaleDate.Before(from) && s.SaleDate.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type stubSequencer struct {
	n    int64
	fail bool
}

func (s *stubSequencer) Next(_ context.Context, _ time.Time) (int64, error) {
	if s.fail {
		return 0, errors.New("sequencer down")
	}
	s.n++
	return s.n, nil
}

func newSalesService(salesRepo *stubSalesRepo, invRepo *stubInventoryRepo, seq *stubSequencer) *SalesService {
	svc := NewSalesService(salesRepo, invRepo, seq, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC) }
	return svc
}

func mrf() *domain.Tire {
	return &domain.Tire{
		ID:            "t1",
		Brand:         "MRF",
		TireSize:      "185/65 R15",
		TireType:      domain.TireTypeTubeless,
		Quantity:      10,
		PurchasePrice: 3000,
		SellingPrice:  3600,
	}
}

func ceat() *domain.Tire {
	return &domain.Tire{
		ID:            "t2",
		Brand:         "CEAT",
		TireSize:      "145/80 R12",
		TireType:      domain.TireTypeTube,
		Quantity:      4,
		PurchasePrice: 1500,
		SellingPrice:  1900,
	}
}

func TestSalesService_CreateSale_Success(t *testing.T) {
	salesRepo := &stubSalesRepo{}
	invRepo := newStubInventoryRepo(mrf(), ceat())
	svc := newSalesService(salesRepo, invRepo, &stubSequencer{})

	sale, err := svc.CreateSale(context.Background(), ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "cash",
		DiscountType:   "percent",
		DiscountValue:  10,
		Items: []ports.SaleItemInput{
			{TireID: "t1", Quantity: 2},
			{TireID: "t2", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}

	if sale.InvoiceID != "INV202406150001" {
		t.Fatalf("unexpected invoice id: %s", sale.InvoiceID)
	}
	wantSubtotal := 2*3600.0 + 1900.0
	if sale.Subtotal != wantSubtotal {
		t.Fatalf("expected subtotal %.2f, got %.2f", wantSubtotal, sale.Subtotal)
	}
	if sale.DiscountAmount != wantSubtotal*0.10 {
		t.Fatalf("unexpected discount amount: %.2f", sale.DiscountAmount)
	}
	if sale.TotalAmount != wantSubtotal*0.90 {
		t.Fatalf("unexpected total: %.2f", sale.TotalAmount)
	}

	// Unit price comes from inventory, cost captured for profit reports.
	if sale.Items[0].UnitPrice != 3600 || sale.Items[0].CostPrice != 3000 {
		t.Fatalf("unexpected item pricing: %+v", sale.Items[0])
	}

	// Stock decremented.
	t1, _ := invRepo.FindByID(context.Background(), "t1")
	if t1.Quantity != 8 {
		t.Fatalf("expected stock 8, got %d", t1.Quantity)
	}
	t2, _ := invRepo.FindByID(context.Background(), "t2")
	if t2.Quantity != 3 {
		t.Fatalf("expected stock 3, got %d", t2.Quantity)
	}
}

func TestSalesService_CreateSale_SequentialInvoiceIDs(t *testing.T) {
	salesRepo := &stubSalesRepo{}
	invRepo := newStubInventoryRepo(mrf())
	svc := newSalesService(salesRepo, invRepo, &stubSequencer{})

	input := ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "upi",
		Items:          []ports.SaleItemInput{{TireID: "t1", Quantity: 1}},
	}

	first, err := svc.CreateSale(context.Background(), input)
	if err != nil {
		t.Fatalf("first sale failed: %v", err)
	}
	second, err := svc.CreateSale(context.Background(), input)
	if err != nil {
		t.Fatalf("second sale failed: %v", err)
	}
	if first.InvoiceID != "INV202406150001" || second.InvoiceID != "INV202406150002" {
		t.Fatalf("unexpected invoice ids: %s %s", first.InvoiceID, second.InvoiceID)
	}
}

func TestSalesService_CreateSale_MissingCustomer(t *testing.T) {
	svc := newSalesService(&stubSalesRepo{}, newStubInventoryRepo(mrf()), &stubSequencer{})

	_, err := svc.CreateSale(context.Background(), ports.CreateSaleInput{
		CustomerMobile: "9876543210",
		PaymentMode:    "cash",
		Items:          []ports.SaleItemInput{{TireID: "t1", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrMissingCustomer) {
		t.Fatalf("expected ErrMissingCustomer, got %v", err)
	}
}

func TestSalesService_CreateSale_EmptyItems(t *testing.T) {
	svc := newSalesService(&stubSalesRepo{}, newStubInventoryRepo(), &stubSequencer{})

	_, err := svc.CreateSale(context.Background(), ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "cash",
	})
	if !errors.Is(err, domain.ErrEmptyDraft) {
		t.Fatalf("expected ErrEmptyDraft, got %v", err)
	}
}

func TestSalesService_CreateSale_InsufficientStock(t *testing.T) {
	salesRepo := &stubSalesRepo{}
	invRepo := newStubInventoryRepo(ceat()) // 4 in stock
	svc := newSalesService(salesRepo, invRepo, &stubSequencer{})

	_, err := svc.CreateSale(context.Background(), ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "cash",
		Items:          []ports.SaleItemInput{{TireID: "t2", Quantity: 5}},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if len(salesRepo.sales) != 0 {
		t.Fatalf("no sale should be persisted")
	}

	// Stock untouched.
	t2, _ := invRepo.FindByID(context.Background(), "t2")
	if t2.Quantity != 4 {
		t.Fatalf("stock should be unchanged, got %d", t2.Quantity)
	}
}

func TestSalesService_CreateSale_DuplicateItem(t *testing.T) {
	svc := newSalesService(&stubSalesRepo{}, newStubInventoryRepo(mrf()), &stubSequencer{})

	_, err := svc.CreateSale(context.Background(), ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "cash",
		Items: []ports.SaleItemInput{
			{TireID: "t1", Quantity: 1},
			{TireID: "t1", Quantity: 2},
		},
	})
	if !errors.Is(err, domain.ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}
}

func TestSalesService_CreateSale_UnknownTire(t *testing.T) {
	svc := newSalesService(&stubSalesRepo{}, newStubInventoryRepo(), &stubSequencer{})

	_, err := svc.CreateSale(context.Background(), ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "cash",
		Items:          []ports.SaleItemInput{{TireID: "ghost", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrTireNotFound) {
		t.Fatalf("expected ErrTireNotFound, got %v", err)
	}
}

func TestSalesService_CreateSale_IdempotentReplay(t *testing.T) {
	salesRepo := &stubSalesRepo{}
	invRepo := newStubInventoryRepo(mrf())
	svc := newSalesService(salesRepo, invRepo, &stubSequencer{})

	input := ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "card",
		Items:          []ports.SaleItemInput{{TireID: "t1", Quantity: 2}},
		IdempotencyKey: "req-123",
	}

	first, err := svc.CreateSale(context.Background(), input)
	if err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	replay, err := svc.CreateSale(context.Background(), input)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	if replay.ID != first.ID || replay.InvoiceID != first.InvoiceID {
		t.Fatalf("replay returned a different sale: %s vs %s", replay.InvoiceID, first.InvoiceID)
	}
	if len(salesRepo.sales) != 1 {
		t.Fatalf("expected a single persisted sale, got %d", len(salesRepo.sales))
	}

	// Stock decremented once, not twice.
	t1, _ := invRepo.FindByID(context.Background(), "t1")
	if t1.Quantity != 8 {
		t.Fatalf("expected stock 8, got %d", t1.Quantity)
	}
}

func TestSalesService_CreateSale_IdempotencyLookupFailure(t *testing.T) {
	salesRepo := &stubSalesRepo{lookupErr: errors.New("network timeout")}
	invRepo := newStubInventoryRepo(mrf())
	svc := newSalesService(salesRepo, invRepo, &stubSequencer{})

	_, err := svc.CreateSale(context.Background(), ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "cash",
		Items:          []ports.SaleItemInput{{TireID: "t1", Quantity: 1}},
		IdempotencyKey: "req-123",
	})
	if err == nil {
		t.Fatalf("a failed lookup must not fall through to a fresh insert")
	}
	if errors.Is(err, domain.ErrSaleNotFound) {
		t.Fatalf("transient failure must not be treated as a missing sale")
	}
	if len(salesRepo.sales) != 0 {
		t.Fatalf("no sale should be persisted")
	}

	// Stock untouched.
	t1, _ := invRepo.FindByID(context.Background(), "t1")
	if t1.Quantity != 10 {
		t.Fatalf("stock should be unchanged, got %d", t1.Quantity)
	}
}

func TestSalesService_CreateSale_InsertRaceReturnsExistingSale(t *testing.T) {
	existing := &domain.Sale{
		ID:             "s1",
		InvoiceID:      "INV202406150001",
		IdempotencyKey: "req-123",
		TotalAmount:    3600,
	}
	salesRepo := &stubSalesRepo{sales: []*domain.Sale{existing}, missNextLookup: true}
	invRepo := newStubInventoryRepo(mrf())
	svc := newSalesService(salesRepo, invRepo, &stubSequencer{})

	// The pre-insert lookup misses, as when two terminals submit the same
	// key at once; the unique index catches the second insert.
	sale, err := svc.CreateSale(context.Background(), ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "cash",
		Items:          []ports.SaleItemInput{{TireID: "t1", Quantity: 2}},
		IdempotencyKey: "req-123",
	})
	if err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}
	if sale.ID != "s1" || sale.InvoiceID != "INV202406150001" {
		t.Fatalf("expected the sale that won the race, got %+v", sale)
	}
	if len(salesRepo.sales) != 1 {
		t.Fatalf("expected a single persisted sale, got %d", len(salesRepo.sales))
	}

	// The winning submission owns the stock decrement; the loser takes none.
	t1, _ := invRepo.FindByID(context.Background(), "t1")
	if t1.Quantity != 10 {
		t.Fatalf("losing submission must not touch stock, got %d", t1.Quantity)
	}
}

func TestSalesService_CreateSale_SequencerFailure(t *testing.T) {
	salesRepo := &stubSalesRepo{}
	svc := newSalesService(salesRepo, newStubInventoryRepo(mrf()), &stubSequencer{fail: true})

	_, err := svc.CreateSale(context.Background(), ports.CreateSaleInput{
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		PaymentMode:    "cash",
		Items:          []ports.SaleItemInput{{TireID: "t1", Quantity: 1}},
	})
	if err == nil {
		t.Fatalf("expected error when sequencer is down")
	}
	if len(salesRepo.sales) != 0 {
		t.Fatalf("no sale should be persisted")
	}
}

func TestSalesService_Report_InclusiveRange(t *testing.T) {
	salesRepo := &stubSalesRepo{}
	day := func(d int) time.Time { return time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC) }
	for i, d := range []int{10, 11, 12} {
		salesRepo.sales = append(salesRepo.sales, &domain.Sale{
			ID:       fmt.Sprintf("s%d", i+1),
			SaleDate: day(d),
		})
	}

	svc := newSalesService(salesRepo, newStubInventoryRepo(), &stubSequencer{})

	sales, err := svc.Report(context.Background(),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	// The end date is inclusive: the sale at noon on the 11th is in.
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
}
