package repositories

import (
	"bakery-shop/models"
	"context"
	"errors"
	"testing"
)

// The detail lookup and the listing share one catalog contract: only active
// products exist as far as the storefront is concerned.
func TestGetByIDExcludesInactive(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	repo := NewProductRepository()

	activeID := seedProduct(t, pool, "Victoria Sponge", 20, true)
	retiredID := seedProduct(t, pool, "Battenberg", 18, false)

	p, err := repo.GetByID(ctx, activeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Victoria Sponge" || p.BasePrice != 20 {
		t.Errorf("unexpected product %+v", p)
	}

	if _, err := repo.GetByID(ctx, retiredID); !errors.Is(err, models.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound for a retired product, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 999999); !errors.Is(err, models.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound for an unknown id, got %v", err)
	}
}

func TestFindAllListsOnlyActive(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	repo := NewProductRepository()

	seedProduct(t, pool, "Victoria Sponge", 20, true)
	seedProduct(t, pool, "Battenberg", 18, false)

	products, total, err := repo.FindAll(ctx, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Name != "Victoria Sponge" {
		t.Errorf("expected only the active product, got total=%d products=%+v", total, products)
	}
}
