package models

// CartLine is one priced entry in a customer's pending order. The cart holds
// at most one line per (product, serving size) pair.
type CartLine struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	ServingSize int     `json:"serving_size"`
	UnitPrice   float64 `json:"unit_price"`
	BasePrice   float64 `json:"base_price"`
}

// Cart is session-resident only; it never reaches durable storage. ItemCount
// is maintained on every mutation so callers never recompute it.
type Cart struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}
