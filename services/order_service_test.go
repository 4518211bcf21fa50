package services

import (
	"bakery-shop/models"
	"context"
	"errors"
	"testing"
)

type mockOrderReader struct {
	orders map[int]*models.Order // keyed by order id; CustomerID is the owner
}

func (m *mockOrderReader) GetForCustomer(ctx context.Context, customerID, orderID int) (*models.Order, error) {
	o, ok := m.orders[orderID]
	if !ok || o.CustomerID != customerID {
		return nil, models.ErrOrderNotFound
	}
	return o, nil
}

func TestGetConfirmationForOwnOrder(t *testing.T) {
	reader := &mockOrderReader{orders: map[int]*models.Order{
		3: {ID: 3, CustomerID: 7, Total: 40, Status: models.OrderStatusPending},
	}}
	svc := NewOrderService(reader)

	order, err := svc.GetConfirmation(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 3 || order.Total != 40 {
		t.Errorf("unexpected order %+v", order)
	}
}

// An order owned by someone else must be indistinguishable from a missing
// one; no forbidden variant that would leak its existence.
func TestGetConfirmationForForeignOrder(t *testing.T) {
	reader := &mockOrderReader{orders: map[int]*models.Order{
		3: {ID: 3, CustomerID: 7},
	}}
	svc := NewOrderService(reader)

	_, err := svc.GetConfirmation(context.Background(), 8, 3)
	if !errors.Is(err, models.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}

	_, err = svc.GetConfirmation(context.Background(), 8, 99)
	if !errors.Is(err, models.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound for missing order, got %v", err)
	}
}
