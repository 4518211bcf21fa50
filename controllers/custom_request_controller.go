package controllers

import (
	"bakery-shop/models"
	"bakery-shop/repositories"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CustomRequestController struct {
	requestRepo *repositories.CustomRequestRepository
}

func NewCustomRequestController() *CustomRequestController {
	return &CustomRequestController{requestRepo: repositories.NewCustomRequestRepository()}
}

// @Summary Submit custom cake request
// @Description Request a made-to-order cake; an admin quotes the price later
// @Tags Custom Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCustomRequest true "Request"
// @Success 201 {object} models.Response
// @Router /custom-requests [post]
func (ctrl *CustomRequestController) Create(c *gin.Context) {
	var req models.CreateCustomRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid custom request",
			Error:   err.Error(),
		})
		return
	}

	request := &models.CustomRequest{
		CustomerID:    c.GetInt("customer_id"),
		Category:      req.Category,
		SpongeFilling: req.SpongeFilling,
		Quantity:      req.Quantity,
		Message:       req.Message,
	}

	if err := ctrl.requestRepo.Create(c.Request.Context(), request); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to submit custom request",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Custom request submitted, we'll get back to you with a price",
		Data:    request,
	})
}

// @Summary List custom requests
// @Description Get all custom cake requests (Admin)
// @Tags Admin - Custom Requests
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/custom-requests [get]
func (ctrl *CustomRequestController) GetAllRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	requests, total, err := ctrl.requestRepo.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve custom requests",
		})
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Custom requests retrieved successfully",
		Data:    requests,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// @Summary Price custom request
// @Description Quote a price for a custom cake request (Admin)
// @Tags Admin - Custom Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body models.SetRequestPriceRequest true "Price"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/custom-requests/{id}/price [patch]
func (ctrl *CustomRequestController) SetPrice(c *gin.Context) {
	id := c.Param("id")

	var req models.SetRequestPriceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "A positive price is required",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.requestRepo.SetPrice(c.Request.Context(), id, req.Price); err != nil {
		if errors.Is(err, models.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Custom request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update custom request",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Price set successfully",
		Data:    gin.H{"id": id, "price": req.Price},
	})
}
