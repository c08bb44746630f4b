package handlers

import (
	"context"
	"net/http"
	"time"

	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"
	"quickcart_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddReview appends a review to the product document and recomputes the
// average rating in the same update.
func AddReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	err = database.Collection(database.ColProducts).
		FindOne(ctx, bson.M{"_id": productID}).
		Decode(&product)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	product.Reviews = append(product.Reviews, models.Review{
		User:    userID,
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	product.AverageRating = models.AverageRatingOf(product.Reviews)

	_, err = database.Collection(database.ColProducts).
		UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": bson.M{
			"reviews":       product.Reviews,
			"averageRating": product.AverageRating,
		}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	services.IndexProduct(product)

	attachReviewerNames(ctx, product.Reviews)

	c.JSON(http.StatusOK, product)
}
