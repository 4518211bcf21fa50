package services

import (
	"bakery-shop/models"
	"context"
	"testing"
	"time"
)

func TestMemoryCartStoreExpiry(t *testing.T) {
	store := NewMemoryCartStore(30 * time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	cart := &models.Cart{
		Lines:     []models.CartLine{{ProductID: 1, Quantity: 2, ServingSize: 6, UnitPrice: 20, BasePrice: 20}},
		ItemCount: 2,
	}
	if err := store.Save(ctx, "s1", cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(29 * time.Minute)
	got, _ := store.Get(ctx, "s1")
	if len(got.Lines) != 1 {
		t.Fatal("cart expired before its TTL")
	}

	now = now.Add(2 * time.Minute)
	got, _ = store.Get(ctx, "s1")
	if len(got.Lines) != 0 {
		t.Fatal("cart survived past its TTL")
	}
}

func TestMemoryCartStoreSaveRefreshesTTL(t *testing.T) {
	store := NewMemoryCartStore(30 * time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	cart := &models.Cart{Lines: []models.CartLine{{ProductID: 1, Quantity: 1, ServingSize: 6}}, ItemCount: 1}
	store.Save(ctx, "s1", cart)

	now = now.Add(20 * time.Minute)
	store.Save(ctx, "s1", cart)

	now = now.Add(20 * time.Minute)
	got, _ := store.Get(ctx, "s1")
	if len(got.Lines) != 1 {
		t.Fatal("save did not refresh the TTL")
	}
}

func TestMemoryCartStoreReturnsCopies(t *testing.T) {
	store := NewMemoryCartStore(time.Hour)
	ctx := context.Background()

	store.Save(ctx, "s1", &models.Cart{
		Lines:     []models.CartLine{{ProductID: 1, Quantity: 1, ServingSize: 6}},
		ItemCount: 1,
	})

	got, _ := store.Get(ctx, "s1")
	got.Lines[0].Quantity = 99

	again, _ := store.Get(ctx, "s1")
	if again.Lines[0].Quantity != 1 {
		t.Error("mutating a returned cart leaked into the store")
	}
}
