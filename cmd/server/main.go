package main

import (
	"log"
	"os"

	"quickcart_back_end/internal/config"
	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseMongo()

	r := gin.Default()
	r.Use(cors.Default())

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}
	log.Println("🚀 QuickCart server listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
