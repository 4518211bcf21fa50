package models

import "time"

const (
	CustomRequestAwaitingPrice = "awaiting_price"
	CustomRequestPriced        = "priced"
)

// CustomRequest is a made-to-order cake enquiry. Price stays nil until an
// admin quotes it.
type CustomRequest struct {
	ID            string    `json:"id"`
	CustomerID    int       `json:"customer_id"`
	Category      string    `json:"category"`
	SpongeFilling string    `json:"sponge_filling"`
	Quantity      int       `json:"quantity"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	Price         *float64  `json:"price,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
