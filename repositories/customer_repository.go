package repositories

import (
	"bakery-shop/config"
	"bakery-shop/models"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (email, password, first_name, last_name, phone, address, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := config.DB.QueryRow(ctx, query,
		customer.Email,
		customer.Password,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.Address,
		customer.Role,
		time.Now(),
	).Scan(&customer.ID, &customer.CreatedAt)

	if isUniqueViolation(err) {
		return models.ErrEmailTaken
	}
	return err
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	query := `SELECT id, email, password, first_name, last_name, phone, address, role, created_at
	          FROM customers WHERE email = $1`

	customer := &models.Customer{}
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&customer.ID,
		&customer.Email,
		&customer.Password,
		&customer.FirstName,
		&customer.LastName,
		&customer.Phone,
		&customer.Address,
		&customer.Role,
		&customer.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*models.Customer, error) {
	query := `SELECT id, email, password, first_name, last_name, phone, address, role, created_at
	          FROM customers WHERE id = $1`

	customer := &models.Customer{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Email,
		&customer.Password,
		&customer.FirstName,
		&customer.LastName,
		&customer.Phone,
		&customer.Address,
		&customer.Role,
		&customer.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}
