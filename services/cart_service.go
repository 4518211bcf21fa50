package services

import (
	"bakery-shop/models"
	"context"
	"errors"
	"fmt"
)

// tierMultipliers maps a "feeds N" serving size to its price multiplier
// relative to the base size of 6. Sizes outside the table extrapolate
// linearly from the base tier.
var tierMultipliers = map[int]float64{
	6:  1.0,
	10: 1.6,
	15: 2.4,
	20: 3.2,
	30: 4.8,
}

func TierMultiplier(servingSize int) float64 {
	if m, ok := tierMultipliers[servingSize]; ok {
		return m
	}
	return float64(servingSize) / 6.0
}

// unitPrice is the single pricing path for add and update; both must go
// through the multiplier table, never plain serving-size scaling.
func unitPrice(basePrice float64, servingSize int) float64 {
	return basePrice * TierMultiplier(servingSize)
}

// ProductCatalog is the read-only product lookup the cart needs.
type ProductCatalog interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

type CartService struct {
	store   CartStore
	catalog ProductCatalog
}

func NewCartService(store CartStore, catalog ProductCatalog) *CartService {
	return &CartService{store: store, catalog: catalog}
}

// Add puts a catalog product into the cart. A line already holding the same
// (product, serving size) pair accumulates quantity instead of duplicating;
// its price stays as computed on the first add.
func (s *CartService) Add(ctx context.Context, key string, productID, quantity, servingSize int) (*models.CartLine, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("look up product %d: %w", productID, err)
	}
	if !product.IsActive {
		return nil, models.ErrProductNotFound
	}

	cart, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if i := findLine(cart.Lines, productID, servingSize); i >= 0 {
		cart.Lines[i].Quantity += quantity
		if err := s.save(ctx, key, cart); err != nil {
			return nil, err
		}
		return &cart.Lines[i], nil
	}

	line := models.CartLine{
		ProductID:   productID,
		ProductName: product.Name,
		Quantity:    quantity,
		ServingSize: servingSize,
		UnitPrice:   unitPrice(product.BasePrice, servingSize),
		BasePrice:   product.BasePrice,
	}
	cart.Lines = append(cart.Lines, line)
	if err := s.save(ctx, key, cart); err != nil {
		return nil, err
	}
	return &line, nil
}

// Update changes a line's serving size and/or quantity. The old line goes
// away entirely; if a line at the new serving size already exists its
// quantity is overwritten, not summed. A missing old line is a no-op so
// retries stay idempotent.
func (s *CartService) Update(ctx context.Context, key string, productID, oldServingSize, newServingSize, quantity int) (*models.CartLine, error) {
	cart, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	oldIdx := findLine(cart.Lines, productID, oldServingSize)
	if oldIdx < 0 {
		return nil, nil
	}
	old := cart.Lines[oldIdx]
	cart.Lines = append(cart.Lines[:oldIdx], cart.Lines[oldIdx+1:]...)

	if i := findLine(cart.Lines, productID, newServingSize); i >= 0 {
		cart.Lines[i].Quantity = quantity
		if err := s.save(ctx, key, cart); err != nil {
			return nil, err
		}
		return &cart.Lines[i], nil
	}

	line := models.CartLine{
		ProductID:   productID,
		ProductName: old.ProductName,
		Quantity:    quantity,
		ServingSize: newServingSize,
		UnitPrice:   unitPrice(old.BasePrice, newServingSize),
		BasePrice:   old.BasePrice,
	}
	cart.Lines = append(cart.Lines, line)
	if err := s.save(ctx, key, cart); err != nil {
		return nil, err
	}
	return &line, nil
}

// Remove deletes the line matching (product, serving size); absent lines
// are a no-op.
func (s *CartService) Remove(ctx context.Context, key string, productID, servingSize int) error {
	cart, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}

	i := findLine(cart.Lines, productID, servingSize)
	if i < 0 {
		return nil
	}
	cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	return s.save(ctx, key, cart)
}

func (s *CartService) Get(ctx context.Context, key string) (*models.Cart, error) {
	return s.store.Get(ctx, key)
}

func (s *CartService) Clear(ctx context.Context, key string) error {
	return s.store.Clear(ctx, key)
}

func (s *CartService) save(ctx context.Context, key string, cart *models.Cart) error {
	count := 0
	for _, line := range cart.Lines {
		count += line.Quantity
	}
	cart.ItemCount = count
	return s.store.Save(ctx, key, cart)
}

func findLine(lines []models.CartLine, productID, servingSize int) int {
	for i, line := range lines {
		if line.ProductID == productID && line.ServingSize == servingSize {
			return i
		}
	}
	return -1
}
