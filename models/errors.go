package models

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrRequestNotFound    = errors.New("custom request not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrOrderIDConflict means two checkouts raced for the same order id;
	// the losing transaction rolled back and the caller should retry.
	ErrOrderIDConflict = errors.New("order id already taken")

	ErrOrderCreationFailed = errors.New("order creation failed")
)
