package handlers

import (
	"context"
	"net/http"
	"time"

	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AddToCart adds quantity of a product, merging with an existing line.
func AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
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

	var cart models.Cart
	err = database.Collection(database.ColCarts).
		FindOne(ctx, bson.M{"user": userID}).
		Decode(&cart)
	if err == mongo.ErrNoDocuments {
		cart = models.Cart{ID: primitive.NewObjectID(), User: userID, Items: []models.CartItem{}}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].Product == productID {
			cart.Items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{Product: productID, Quantity: input.Quantity})
	}
	cart.UpdatedAt = time.Now()

	_, err = database.Collection(database.ColCarts).
		ReplaceOne(ctx, bson.M{"user": userID}, cart, replaceUpsert())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	c.Status(http.StatusOK)
}

// UpdateCartItem sets a line's quantity; below 1 removes the line. The new
// quantity must be coverable by current stock.
func UpdateCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cart models.Cart
	err = database.Collection(database.ColCarts).
		FindOne(ctx, bson.M{"user": userID}).
		Decode(&cart)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	var product models.Product
	err = database.Collection(database.ColProducts).
		FindOne(ctx, bson.M{"_id": productID}).
		Decode(&product)
	if err != nil || product.Stock < input.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
		return
	}

	if input.Quantity < 1 {
		items := cart.Items[:0]
		for _, item := range cart.Items {
			if item.Product != productID {
				items = append(items, item)
			}
		}
		cart.Items = items
	} else {
		for i := range cart.Items {
			if cart.Items[i].Product == productID {
				cart.Items[i].Quantity = input.Quantity
				break
			}
		}
	}
	cart.UpdatedAt = time.Now()

	_, err = database.Collection(database.ColCarts).
		ReplaceOne(ctx, bson.M{"user": userID}, cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	populateCart(ctx, &cart)
	c.JSON(http.StatusOK, cart)
}

// RemoveFromCart pulls one line out of the cart.
func RemoveFromCart(c *gin.Context) {
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

	var cart models.Cart
	err = database.Collection(database.ColCarts).
		FindOneAndUpdate(ctx, bson.M{"user": userID},
			bson.M{
				"$pull": bson.M{"items": bson.M{"product": productID}},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
			findOneAndUpdateReturnAfter()).
		Decode(&cart)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	populateCart(ctx, &cart)
	c.JSON(http.StatusOK, cart)
}

// GetCart returns the cart with product details attached.
func GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cart models.Cart
	err := database.Collection(database.ColCarts).
		FindOne(ctx, bson.M{"user": userID}).
		Decode(&cart)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	populateCart(ctx, &cart)
	c.JSON(http.StatusOK, cart)
}

// populateCart attaches product documents to the cart lines.
func populateCart(ctx context.Context, cart *models.Cart) {
	for i := range cart.Items {
		var product models.Product
		err := database.Collection(database.ColProducts).
			FindOne(ctx, bson.M{"_id": cart.Items[i].Product}).
			Decode(&product)
		if err == nil {
			cart.Items[i].ProductDetail = &product
		}
	}
}
