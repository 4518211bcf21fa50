package models

type RegisterRequest struct {
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name" binding:"required"`
	Phone     string `json:"phone" form:"phone" binding:"required,len=10,numeric"`
	Address   string `json:"address" form:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID   int `json:"product_id" form:"product_id" binding:"required"`
	Quantity    int `json:"quantity" form:"quantity" binding:"required,min=1"`
	ServingSize int `json:"serving_size" form:"serving_size" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	ProductID      int `json:"product_id" form:"product_id" binding:"required"`
	OldServingSize int `json:"old_serving_size" form:"old_serving_size" binding:"required,min=1"`
	NewServingSize int `json:"new_serving_size" form:"new_serving_size" binding:"required,min=1"`
	Quantity       int `json:"quantity" form:"quantity" binding:"required,min=1"`
}

type RemoveCartItemRequest struct {
	ProductID   int `json:"product_id" form:"product_id" binding:"required"`
	ServingSize int `json:"serving_size" form:"serving_size" binding:"required,min=1"`
}

type CreateCustomRequest struct {
	Category      string `json:"category" form:"category" binding:"required"`
	SpongeFilling string `json:"sponge_filling" form:"sponge_filling" binding:"required"`
	Quantity      int    `json:"quantity" form:"quantity" binding:"required,min=1"`
	Message       string `json:"message" form:"message"`
}

type SetRequestPriceRequest struct {
	Price float64 `json:"price" form:"price" binding:"required,gt=0"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

type CartView struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
}
