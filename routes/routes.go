package routes

import (
	"bakery-shop/config"
	"bakery-shop/controllers"
	"bakery-shop/middleware"
	"bakery-shop/repositories"
	"bakery-shop/services"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	var cartStore services.CartStore
	if config.RedisClient != nil {
		cartStore = services.NewRedisCartStore(config.RedisClient, config.AppConfig.CartTTL)
	} else {
		cartStore = services.NewMemoryCartStore(config.AppConfig.CartTTL)
	}

	productRepo := repositories.NewProductRepository()
	customerRepo := repositories.NewCustomerRepository()
	orderRepo := repositories.NewOrderRepository()

	var mailer services.Mailer
	if emailService, err := services.NewEmailService(); err != nil {
		log.Println("Order confirmation emails disabled:", err)
	} else {
		mailer = emailService
	}

	cartService := services.NewCartService(cartStore, productRepo)
	checkoutService := services.NewCheckoutService(orderRepo, customerRepo, cartService, mailer)
	orderService := services.NewOrderService(orderRepo)

	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController(cartService)
	orderCtrl := controllers.NewOrderController(checkoutService, orderService, orderRepo)
	customCtrl := controllers.NewCustomRequestController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items", cartCtrl.RemoveItem)

		auth.POST("/orders", orderCtrl.Checkout)
		auth.GET("/orders/:id", orderCtrl.GetConfirmation)

		auth.POST("/custom-requests", customCtrl.Create)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.GET("/custom-requests", customCtrl.GetAllRequests)
		admin.PATCH("/custom-requests/:id/price", customCtrl.SetPrice)
	}
}
