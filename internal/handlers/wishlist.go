package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"quickcart_back_end/internal/cache"
	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const wishlistCacheTTL = 10 * time.Minute

func wishlistCacheKey(userID primitive.ObjectID) string {
	return "wishlist:" + userID.Hex()
}

// AddToWishlist puts a product on the user's wishlist (idempotent).
func AddToWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.Collection(database.ColProducts).
		CountDocuments(ctx, bson.M{"_id": productID})
	if err != nil || count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var wishlist models.Wishlist
	err = database.Collection(database.ColWishlists).
		FindOneAndUpdate(ctx, bson.M{"user": userID},
			bson.M{
				"$addToSet": bson.M{"products": productID},
				"$set":      bson.M{"updatedAt": time.Now()},
			},
			findOneAndUpdateReturnAfter().SetUpsert(true)).
		Decode(&wishlist)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
		return
	}

	cache.DeleteCache(wishlistCacheKey(userID))

	c.JSON(http.StatusOK, wishlist)
}

// RemoveFromWishlist drops a product from the wishlist.
func RemoveFromWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wishlist models.Wishlist
	err = database.Collection(database.ColWishlists).
		FindOneAndUpdate(ctx, bson.M{"user": userID},
			bson.M{
				"$pull": bson.M{"products": productID},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
			findOneAndUpdateReturnAfter()).
		Decode(&wishlist)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
		return
	}

	cache.DeleteCache(wishlistCacheKey(userID))

	c.JSON(http.StatusOK, wishlist)
}

// GetWishlist returns the wishlist with product details, served from the
// Redis read cache when fresh.
func GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if cached, err := cache.GetCache(wishlistCacheKey(userID)); err == nil {
		var wishlist models.Wishlist
		if json.Unmarshal([]byte(cached), &wishlist) == nil {
			c.JSON(http.StatusOK, wishlist)
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wishlist models.Wishlist
	err := database.Collection(database.ColWishlists).
		FindOne(ctx, bson.M{"user": userID}).
		Decode(&wishlist)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}

	for _, pid := range wishlist.Products {
		var product models.Product
		err := database.Collection(database.ColProducts).
			FindOne(ctx, bson.M{"_id": pid}).
			Decode(&product)
		if err == nil {
			wishlist.ProductDetails = append(wishlist.ProductDetails, product)
		}
	}

	if data, err := json.Marshal(wishlist); err == nil {
		cache.SetCache(wishlistCacheKey(userID), data, wishlistCacheTTL)
	}

	c.JSON(http.StatusOK, wishlist)
}
