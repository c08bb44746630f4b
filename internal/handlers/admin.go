package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUsers lists every account, password hashes stripped.
func GetUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Collection(database.ColUsers).
		Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetStats aggregates the marketplace dashboard numbers.
func GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	userCount, err := database.Collection(database.ColUsers).CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	orderCount, err := database.Collection(database.ColOrders).CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	productCount, err := database.Collection(database.ColProducts).
		CountDocuments(ctx, bson.M{"deleted": false})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	totalSales := 0.0
	cursor, err := database.Collection(database.ColOrders).Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
	})
	if err == nil {
		defer cursor.Close(ctx)
		var results []bson.M
		if cursor.All(ctx, &results) == nil && len(results) > 0 {
			if v, ok := results[0]["total"].(float64); ok {
				totalSales = v
			}
		}
	} else {
		log.Println("⚠️ Sales aggregation failed:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":    userCount,
		"totalOrders":   orderCount,
		"totalProducts": productCount,
		"totalSales":    totalSales,
	})
}

// ManageAdmin grants the admin role to an account looked up by email.
func ManageAdmin(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Collection(database.ColUsers).
		FindOneAndUpdate(ctx, bson.M{"email": input.Email},
			bson.M{"$set": bson.M{"role": models.RoleAdmin}},
			findOneAndUpdateReturnAfter().
				SetProjection(bson.M{"password": 0})).
		Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	log.Println("👑 Admin role granted to", user.Email)
	c.JSON(http.StatusOK, user)
}
