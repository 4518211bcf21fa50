package services

import (
	"bakery-shop/models"
	"bakery-shop/repositories"
	"bakery-shop/utils"
	"context"
	"errors"
)

type AuthService struct {
	customerRepo *repositories.CustomerRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		customerRepo: repositories.NewCustomerRepository(),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      "customer",
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(customer.ID, customer.Email, customer.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, Customer: *customer}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(customer.Password, req.Password)
	if err != nil || !valid {
		return nil, models.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(customer.ID, customer.Email, customer.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, Customer: *customer}, nil
}
