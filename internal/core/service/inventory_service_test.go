package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/core/domain"
	"github.com/tireshop/pos-system/internal/core/ports"
)

func TestInventoryService_Create(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.TireInput{
		Brand:         "Apollo",
		TireSize:      "195/55 R16",
		TireType:      "tubeless",
		Quantity:      6,
		PurchasePrice: 4200,
		SellingPrice:  5100,
		SupplierName:  "Apollo Distributors",
		PurchaseDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.TireType != domain.TireTypeTubeless {
		t.Fatalf("unexpected type: %s", created.TireType)
	}

	fetched, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if fetched.Brand != "Apollo" || fetched.SellingPrice != 5100 {
		t.Fatalf("unexpected tire: %+v", fetched)
	}
}

func TestInventoryService_Get_NotFound(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrTireNotFound) {
		t.Fatalf("expected ErrTireNotFound, got %v", err)
	}
}

func TestInventoryService_List_CapsPageSize(t *testing.T) {
	repo := &capturingInventoryRepo{stubInventoryRepo: newStubInventoryRepo()}
	svc := NewInventoryService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListTiresFilter{Limit: 5000, Skip: -3}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastFilter.Limit != maxPageSize {
		t.Fatalf("expected limit capped at %d, got %d", maxPageSize, repo.lastFilter.Limit)
	}
	if repo.lastFilter.Skip != 0 {
		t.Fatalf("expected skip floored at 0, got %d", repo.lastFilter.Skip)
	}
}

type capturingInventoryRepo struct {
	*stubInventoryRepo
	lastFilter ports.ListTiresFilter
}

func (r *capturingInventoryRepo) List(ctx context.Context, filter ports.ListTiresFilter) ([]*domain.Tire, error) {
	r.lastFilter = filter
	return r.stubInventoryRepo.List(ctx, filter)
}

func TestInventoryService_Update_PartialFields(t *testing.T) {
	repo := newStubInventoryRepo(mrf())
	svc := NewInventoryService(repo, zerolog.Nop())

	price := 3900.0
	_, err := svc.Update(context.Background(), "t1", ports.TireUpdate{SellingPrice: &price})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
}

func TestInventoryService_Delete(t *testing.T) {
	repo := newStubInventoryRepo(mrf())
	svc := NewInventoryService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "t1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), "t1"); !errors.Is(err, domain.ErrTireNotFound) {
		t.Fatalf("expected ErrTireNotFound, got %v", err)
	}
}
