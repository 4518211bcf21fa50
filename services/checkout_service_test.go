package services

import (
	"bakery-shop/models"
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"
)

type mockCustomerDirectory struct {
	customers map[int]*models.Customer
}

func (m *mockCustomerDirectory) FindByID(ctx context.Context, id int) (*models.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, models.ErrCustomerNotFound
	}
	return c, nil
}

// mockOrderStore mimics the repository contract: max+1 id allocation with a
// uniqueness check, all-or-nothing persistence. The unlocked window between
// allocation and insert reproduces the race the database constraint guards
// against.
type mockOrderStore struct {
	mu     sync.Mutex
	orders map[int]*models.Order
	lines  map[int][]models.CartLine

	failWith  error // forces every Create to fail atomically
	conflicts int   // number of Creates to reject with an id conflict first
	racy      bool  // yield between id allocation and insert
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{
		orders: make(map[int]*models.Order),
		lines:  make(map[int][]models.CartLine),
	}
}

func (m *mockOrderStore) Create(ctx context.Context, customerID int, total float64, lines []models.CartLine) (*models.Order, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	m.mu.Lock()
	if m.conflicts > 0 {
		m.conflicts--
		m.mu.Unlock()
		return nil, models.ErrOrderIDConflict
	}

	id := 1
	for existing := range m.orders {
		if existing >= id {
			id = existing + 1
		}
	}

	if m.racy {
		m.mu.Unlock()
		runtime.Gosched()
		m.mu.Lock()
	}
	defer m.mu.Unlock()

	if _, taken := m.orders[id]; taken {
		return nil, models.ErrOrderIDConflict
	}

	order := &models.Order{
		ID:         id,
		CustomerID: customerID,
		Total:      total,
		Status:     models.OrderStatusPending,
		CreatedAt:  time.Now(),
	}
	m.orders[id] = order
	m.lines[id] = append([]models.CartLine(nil), lines...)
	return order, nil
}

type recordingMailer struct {
	mu    sync.Mutex
	sent  []string
	fails bool
}

func (m *recordingMailer) SendOrderConfirmation(toEmail string, orderID int, total float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, fmt.Sprintf("%s:%d", toEmail, orderID))
	return nil
}

func newCheckoutFixture(store *mockOrderStore, mailer Mailer) (*CheckoutService, *CartService) {
	cart := newTestCartService()
	customers := &mockCustomerDirectory{customers: map[int]*models.Customer{
		7: {ID: 7, Email: "alice@example.com", Role: "customer"},
	}}
	return NewCheckoutService(store, customers, cart, mailer), cart
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _ := newCheckoutFixture(newMockOrderStore(), nil)

	_, err := svc.PlaceOrder(context.Background(), 7, "7")
	if !errors.Is(err, models.ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlaceOrderUnknownCustomer(t *testing.T) {
	svc, cart := newCheckoutFixture(newMockOrderStore(), nil)
	ctx := context.Background()
	cart.Add(ctx, "42", 1, 1, 6)

	_, err := svc.PlaceOrder(ctx, 42, "42")
	if !errors.Is(err, models.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	store := newMockOrderStore()
	mailer := &recordingMailer{}
	svc, cart := newCheckoutFixture(store, mailer)
	ctx := context.Background()

	// Product 1: base price 20, serving size 6 so unit price stays 20.
	if _, err := cart.Add(ctx, "7", 1, 2, 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := svc.PlaceOrder(ctx, 7, "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.ID != 1 {
		t.Errorf("expected first order id 1, got %d", order.ID)
	}
	if order.Total != 40.0 {
		t.Errorf("expected total 40.00, got %v", order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("expected status %q, got %q", models.OrderStatusPending, order.Status)
	}

	lines := store.lines[order.ID]
	if len(lines) != 1 {
		t.Fatalf("expected exactly one order line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 || lines[0].UnitPrice != 20.0 {
		t.Errorf("expected line qty 2 at 20.00, got qty %d at %v", lines[0].Quantity, lines[0].UnitPrice)
	}

	after, _ := cart.Get(ctx, "7")
	if len(after.Lines) != 0 || after.ItemCount != 0 {
		t.Error("cart not cleared after successful checkout")
	}

	if len(mailer.sent) != 1 || mailer.sent[0] != "alice@example.com:1" {
		t.Errorf("expected one confirmation email, got %v", mailer.sent)
	}
}

func TestPlaceOrderFailureLeavesCartIntact(t *testing.T) {
	store := newMockOrderStore()
	store.failWith = errors.New("connection reset")
	svc, cart := newCheckoutFixture(store, nil)
	ctx := context.Background()

	cart.Add(ctx, "7", 1, 2, 6)
	cart.Add(ctx, "7", 2, 1, 10)

	_, err := svc.PlaceOrder(ctx, 7, "7")
	if !errors.Is(err, models.ErrOrderCreationFailed) {
		t.Fatalf("expected ErrOrderCreationFailed, got %v", err)
	}

	if len(store.orders) != 0 || len(store.lines) != 0 {
		t.Error("partial order persisted by a failed checkout")
	}

	after, _ := cart.Get(ctx, "7")
	if len(after.Lines) != 2 {
		t.Errorf("expected cart to keep its 2 lines for retry, got %d", len(after.Lines))
	}
}

func TestPlaceOrderRetriesOnIDConflict(t *testing.T) {
	store := newMockOrderStore()
	store.conflicts = 2
	svc, cart := newCheckoutFixture(store, nil)
	ctx := context.Background()

	cart.Add(ctx, "7", 1, 1, 6)

	order, err := svc.PlaceOrder(ctx, 7, "7")
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if order.ID != 1 {
		t.Errorf("expected order id 1, got %d", order.ID)
	}
}

func TestPlaceOrderGivesUpAfterRepeatedConflicts(t *testing.T) {
	store := newMockOrderStore()
	store.conflicts = maxIDConflictRetries
	svc, cart := newCheckoutFixture(store, nil)
	ctx := context.Background()

	cart.Add(ctx, "7", 1, 1, 6)

	_, err := svc.PlaceOrder(ctx, 7, "7")
	if !errors.Is(err, models.ErrOrderCreationFailed) {
		t.Fatalf("expected ErrOrderCreationFailed, got %v", err)
	}

	after, _ := cart.Get(ctx, "7")
	if len(after.Lines) != 1 {
		t.Error("cart not preserved after exhausted retries")
	}
}

func TestConcurrentCheckoutsNeverShareAnID(t *testing.T) {
	store := newMockOrderStore()
	store.racy = true

	cart := newTestCartService()
	customers := &mockCustomerDirectory{customers: map[int]*models.Customer{}}
	for i := 1; i <= 8; i++ {
		customers.customers[i] = &models.Customer{ID: i, Email: fmt.Sprintf("c%d@example.com", i)}
	}
	svc := NewCheckoutService(store, customers, cart, nil)
	ctx := context.Background()

	for i := 1; i <= 8; i++ {
		if _, err := cart.Add(ctx, fmt.Sprint(i), 1, 1, 6); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(customerID int) {
			defer wg.Done()
			if _, err := svc.PlaceOrder(ctx, customerID, fmt.Sprint(customerID)); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	// Ids are unique by construction of the map; the real assertion is that
	// every success produced exactly one stored order.
	if len(store.orders) != successes {
		t.Errorf("%d successful checkouts but %d stored orders", successes, len(store.orders))
	}
	if successes == 0 {
		t.Error("expected at least one checkout to succeed")
	}
	for id := range store.orders {
		if len(store.lines[id]) != 1 {
			t.Errorf("order %d has %d lines, want 1", id, len(store.lines[id]))
		}
	}
}

func TestPlaceOrderSurvivesMailerFailure(t *testing.T) {
	store := newMockOrderStore()
	mailer := &recordingMailer{fails: true}
	svc, cart := newCheckoutFixture(store, mailer)
	ctx := context.Background()

	cart.Add(ctx, "7", 1, 1, 6)

	if _, err := svc.PlaceOrder(ctx, 7, "7"); err != nil {
		t.Fatalf("checkout must not fail on email, got %v", err)
	}
}
