package repositories

import (
	"bakery-shop/config"
	"bakery-shop/models"
	"context"
	"time"

	"github.com/google/uuid"
)

type CustomRequestRepository struct{}

func NewCustomRequestRepository() *CustomRequestRepository {
	return &CustomRequestRepository{}
}

func (r *CustomRequestRepository) Create(ctx context.Context, req *models.CustomRequest) error {
	req.ID = uuid.NewString()
	req.Status = models.CustomRequestAwaitingPrice
	req.CreatedAt = time.Now()

	query := `
		INSERT INTO custom_requests (id, customer_id, category, sponge_filling, quantity, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := config.DB.Exec(ctx, query,
		req.ID, req.CustomerID, req.Category, req.SpongeFilling,
		req.Quantity, req.Message, req.Status, req.CreatedAt,
	)
	return err
}

func (r *CustomRequestRepository) FindAll(ctx context.Context, page, limit int) ([]models.CustomRequest, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM custom_requests`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(ctx,
		`SELECT id, customer_id, category, sponge_filling, quantity, message, status, price, created_at
		 FROM custom_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := []models.CustomRequest{}
	for rows.Next() {
		var cr models.CustomRequest
		if err := rows.Scan(&cr.ID, &cr.CustomerID, &cr.Category, &cr.SpongeFilling,
			&cr.Quantity, &cr.Message, &cr.Status, &cr.Price, &cr.CreatedAt); err != nil {
			return nil, 0, err
		}
		requests = append(requests, cr)
	}
	return requests, total, rows.Err()
}

func (r *CustomRequestRepository) SetPrice(ctx context.Context, id string, price float64) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE custom_requests SET price = $1, status = $2 WHERE id = $3`,
		price, models.CustomRequestPriced, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrRequestNotFound
	}
	return nil
}
