package repositories

import (
	"bakery-shop/config"
	"bakery-shop/models"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// GetByID serves the same active-only catalog as FindAll; discontinued
// products read as missing.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, name, description, category, base_price, is_active, created_at
	          FROM products WHERE id = $1 AND is_active = true`

	var p models.Product
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.BasePrice, &p.IsActive, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, description, category, base_price, is_active, created_at
	          FROM products WHERE is_active = true ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := config.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.BasePrice, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}
