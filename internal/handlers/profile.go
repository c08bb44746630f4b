package handlers

import (
	"context"
	"net/http"
	"time"

	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetProfile returns the caller's account document.
func GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"_id": userID}).
		Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdatePrimaryAddress appends an address to the caller's primary list.
func UpdatePrimaryAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Address models.Address `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Collection(database.ColUsers).
		FindOneAndUpdate(ctx, bson.M{"_id": userID},
			bson.M{"$push": bson.M{"primaryAddress": input.Address}},
			findOneAndUpdateReturnAfter()).
		Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// CheckPrimaryAddress returns the caller's primary address list, empty when
// none is set.
func CheckPrimaryAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"_id": userID}).
		Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	addresses := user.PrimaryAddress
	if addresses == nil {
		addresses = []models.Address{}
	}

	c.JSON(http.StatusOK, gin.H{"primaryAddress": addresses})
}
