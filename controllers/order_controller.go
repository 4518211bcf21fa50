package controllers

import (
	"bakery-shop/models"
	"bakery-shop/repositories"
	"bakery-shop/services"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	checkoutService *services.CheckoutService
	orderService    *services.OrderService
	orderRepo       *repositories.OrderRepository
}

func NewOrderController(checkoutService *services.CheckoutService, orderService *services.OrderService, orderRepo *repositories.OrderRepository) *OrderController {
	return &OrderController{
		checkoutService: checkoutService,
		orderService:    orderService,
		orderRepo:       orderRepo,
	}
}

// @Summary Checkout
// @Description Convert the session cart into an order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	customerID := c.GetInt("customer_id")

	order, err := ctrl.checkoutService.PlaceOrder(c.Request.Context(), customerID, cartKey(c))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Cart is empty",
			})
		case errors.Is(err, models.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Customer not found",
			})
		default:
			// Cart left intact; safe to retry.
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Order creation failed, please try again",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// @Summary Order confirmation
// @Description Get one of your orders with its lines
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetConfirmation(c *gin.Context) {
	customerID := c.GetInt("customer_id")
	orderID, _ := strconv.Atoi(c.Param("id"))
	if orderID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order ID",
		})
		return
	}

	order, err := ctrl.orderService.GetConfirmation(c.Request.Context(), customerID, orderID)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	orders, total, err := ctrl.orderRepo.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// @Summary Get order by ID
// @Description Get order details (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("id"))
	if orderID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order ID",
		})
		return
	}

	order, err := ctrl.orderRepo.GetByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// @Summary Update order status
// @Description Update order status (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("id"))
	if orderID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order ID",
		})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Status is required",
		})
		return
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Status is required",
		})
		return
	}

	if err := ctrl.orderRepo.UpdateStatus(c.Request.Context(), orderID, status); err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update order status",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order status updated successfully",
		Data:    gin.H{"id": orderID, "status": status},
	})
}
