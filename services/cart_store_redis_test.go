package services

import (
	"bakery-shop/models"
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisCartStoreRoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	store := NewRedisCartStore(client, time.Minute)
	client.Del(ctx, cartKeyPrefix+"test-session")

	got, err := store.Get(ctx, "test-session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Lines) != 0 {
		t.Fatal("expected empty cart for a fresh session")
	}

	cart := &models.Cart{
		Lines: []models.CartLine{
			{ProductID: 1, ProductName: "Victoria Sponge", Quantity: 2, ServingSize: 10, UnitPrice: 32, BasePrice: 20},
		},
		ItemCount: 2,
	}
	if err := store.Save(ctx, "test-session", cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = store.Get(ctx, "test-session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Lines) != 1 || got.Lines[0].UnitPrice != 32 || got.ItemCount != 2 {
		t.Errorf("cart did not round-trip: %+v", got)
	}

	if err := store.Clear(ctx, "test-session"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ = store.Get(ctx, "test-session")
	if len(got.Lines) != 0 {
		t.Error("cart survived clear")
	}
}
