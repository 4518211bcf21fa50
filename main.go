package main

import (
	"bakery-shop/config"
	_ "bakery-shop/docs"
	"bakery-shop/middleware"
	"bakery-shop/routes"
	"log"

	"github.com/gin-gonic/gin"
)

// @title Bakery Shop API
// @version 1.0
// @description Online bakery storefront: catalog, session carts, checkout, custom cake requests.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()
	config.RunMigrations()

	config.ConnectRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
