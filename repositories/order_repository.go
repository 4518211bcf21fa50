package repositories

import (
	"bakery-shop/config"
	"bakery-shop/models"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists an order and all of its lines in one transaction. The id
// is allocated as max+1 inside the same transaction; the primary-key
// constraint catches the losing side of a concurrent allocation, which
// surfaces as models.ErrOrderIDConflict so the caller can retry with a
// fresh id. Nothing is visible to readers until the commit.
func (r *OrderRepository) Create(ctx context.Context, customerID int, total float64, lines []models.CartLine) (*models.Order, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin checkout transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM orders`).Scan(&id); err != nil {
		return nil, fmt.Errorf("allocate order id: %w", err)
	}

	now := time.Now()
	_, err = tx.Exec(ctx,
		`INSERT INTO orders (id, customer_id, total, status, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, customerID, total, models.OrderStatusPending, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrOrderIDConflict
		}
		return nil, fmt.Errorf("insert order %d: %w", id, err)
	}

	for _, line := range lines {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, serving_size, unit_price)
			 VALUES ($1, $2, $3, $4, $5)`,
			id, line.ProductID, line.Quantity, line.ServingSize, line.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("insert line for order %d, product %d: %w", id, line.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrOrderIDConflict
		}
		return nil, fmt.Errorf("commit order %d: %w", id, err)
	}

	return &models.Order{
		ID:         id,
		CustomerID: customerID,
		Total:      total,
		Status:     models.OrderStatusPending,
		CreatedAt:  now,
	}, nil
}

// GetForCustomer loads an order with its lines. The ownership check is part
// of the lookup predicate: an order belonging to someone else reads the same
// as a missing one.
func (r *OrderRepository) GetForCustomer(ctx context.Context, customerID, orderID int) (*models.Order, error) {
	var o models.Order
	err := config.DB.QueryRow(ctx,
		`SELECT id, customer_id, total, status, created_at FROM orders WHERE id = $1 AND customer_id = $2`,
		orderID, customerID,
	).Scan(&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}

	rows, err := config.DB.Query(ctx,
		`SELECT oi.order_id, oi.product_id, p.name, oi.quantity, oi.serving_size, oi.unit_price
		 FROM order_items oi
		 JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("load lines for order %d: %w", orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.OrderID, &line.ProductID, &line.ProductName,
			&line.Quantity, &line.ServingSize, &line.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan line for order %d: %w", orderID, err)
		}
		o.Lines = append(o.Lines, line)
	}
	return &o, rows.Err()
}

// GetByID is the admin-side lookup; no ownership scoping.
func (r *OrderRepository) GetByID(ctx context.Context, orderID int) (*models.Order, error) {
	var o models.Order
	err := config.DB.QueryRow(ctx,
		`SELECT id, customer_id, total, status, created_at FROM orders WHERE id = $1`,
		orderID,
	).Scan(&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}
	return &o, nil
}

func (r *OrderRepository) FindAll(ctx context.Context, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(ctx,
		`SELECT id, customer_id, total, status, created_at FROM orders
		 ORDER BY id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	tag, err := config.DB.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return fmt.Errorf("update status of order %d: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
