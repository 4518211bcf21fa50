package controllers

import (
	"bakery-shop/models"
	"bakery-shop/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// The cart is keyed by the authenticated customer; one session cart per
// customer.
func cartKey(c *gin.Context) string {
	return strconv.Itoa(c.GetInt("customer_id"))
}

// @Summary Get cart
// @Description Get the session cart with totals
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartService.Get(c.Request.Context(), cartKey(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load cart",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data: models.CartView{
			Lines:     cart.Lines,
			ItemCount: cart.ItemCount,
			Total:     cart.Total(),
		},
	})
}

// @Summary Add cart item
// @Description Add a product at a serving size; an existing line for the same pair accumulates quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid cart item",
			Error:   err.Error(),
		})
		return
	}

	line, err := ctrl.cartService.Add(c.Request.Context(), cartKey(c), req.ProductID, req.Quantity, req.ServingSize)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    line,
	})
}

// @Summary Update cart item
// @Description Change a line's serving size and/or quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateCartItemRequest true "Update"
// @Success 200 {object} models.Response
// @Router /cart/items [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid cart update",
			Error:   err.Error(),
		})
		return
	}

	line, err := ctrl.cartService.Update(c.Request.Context(), cartKey(c),
		req.ProductID, req.OldServingSize, req.NewServingSize, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    line,
	})
}

// @Summary Remove cart item
// @Description Remove the line matching product and serving size
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RemoveCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	var req models.RemoveCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid cart item",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.cartService.Remove(c.Request.Context(), cartKey(c), req.ProductID, req.ServingSize); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to remove cart item",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
	})
}
