package services

import (
	"bakery-shop/models"
	"context"
)

// OrderReader loads an order scoped to its owner; foreign and missing
// orders are indistinguishable to the caller.
type OrderReader interface {
	GetForCustomer(ctx context.Context, customerID, orderID int) (*models.Order, error)
}

type OrderService struct {
	orders OrderReader
}

func NewOrderService(orders OrderReader) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) GetConfirmation(ctx context.Context, customerID, orderID int) (*models.Order, error) {
	return s.orders.GetForCustomer(ctx, customerID, orderID)
}
