package models

import "time"

const OrderStatusPending = "pending"

type Order struct {
	ID         int         `json:"id"`
	CustomerID int         `json:"customer_id"`
	Total      float64     `json:"total"`
	Status     string      `json:"status"`
	Lines      []OrderLine `json:"lines,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderLine is immutable once written. ProductName is denormalized at read
// time for display.
type OrderLine struct {
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	ServingSize int     `json:"serving_size"`
	UnitPrice   float64 `json:"unit_price"`
}
