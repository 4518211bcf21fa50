package services

import (
	"bakery-shop/models"
	"context"
	"errors"
	"fmt"
	"log"
)

// OrderStore persists a finalized cart as an order plus its lines in a
// single atomic unit. Create returns models.ErrOrderIDConflict when a
// concurrent checkout won the same id.
type OrderStore interface {
	Create(ctx context.Context, customerID int, total float64, lines []models.CartLine) (*models.Order, error)
}

// CustomerDirectory resolves the authenticated session to a customer.
type CustomerDirectory interface {
	FindByID(ctx context.Context, id int) (*models.Customer, error)
}

// Mailer sends the post-checkout confirmation. Optional; checkout never
// fails on it.
type Mailer interface {
	SendOrderConfirmation(toEmail string, orderID int, total float64) error
}

const maxIDConflictRetries = 3

type CheckoutService struct {
	orders    OrderStore
	customers CustomerDirectory
	cart      *CartService
	mailer    Mailer
}

func NewCheckoutService(orders OrderStore, customers CustomerDirectory, cart *CartService, mailer Mailer) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		customers: customers,
		cart:      cart,
		mailer:    mailer,
	}
}

// PlaceOrder turns the session cart into a durable order. The total is the
// sum of the cart's line prices as they were at add time; catalog prices
// are deliberately not re-read. The cart is cleared only after the order
// committed, so a failed checkout can always be retried with the cart
// intact.
func (s *CheckoutService) PlaceOrder(ctx context.Context, customerID int, cartKey string) (*models.Order, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resolve customer %d: %w", customerID, err)
	}

	cart, err := s.cart.Get(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("load cart for customer %d: %w", customerID, err)
	}
	if len(cart.Lines) == 0 {
		return nil, models.ErrEmptyCart
	}

	total := cart.Total()

	var order *models.Order
	for attempt := 1; ; attempt++ {
		order, err = s.orders.Create(ctx, customerID, total, cart.Lines)
		if err == nil {
			break
		}
		if errors.Is(err, models.ErrOrderIDConflict) && attempt < maxIDConflictRetries {
			log.Printf("order id conflict for customer %d, retrying (attempt %d)", customerID, attempt)
			continue
		}
		log.Printf("order creation failed for customer %d: %v", customerID, err)
		return nil, models.ErrOrderCreationFailed
	}

	if err := s.cart.Clear(ctx, cartKey); err != nil {
		log.Printf("failed to clear cart %s after order %d: %v", cartKey, order.ID, err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(customer.Email, order.ID, order.Total); err != nil {
			log.Printf("confirmation email for order %d failed: %v", order.ID, err)
		}
	}

	return order, nil
}
