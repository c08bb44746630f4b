package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"
	"quickcart_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxProductImages = 5

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// CreateProduct lists a new catalog item. Accepts multipart form data with
// up to 5 images which land in MinIO; the product is then indexed for search.
func CreateProduct(c *gin.Context) {
	sellerID, ok := currentUserID(c)
	if !ok {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	category := strings.TrimSpace(c.PostForm("category"))
	currency := c.DefaultPostForm("currency", "USD")

	price, priceErr := strconv.ParseFloat(c.PostForm("price"), 64)
	stock, stockErr := strconv.Atoi(c.PostForm("stock"))
	if name == "" || description == "" || category == "" || priceErr != nil || stockErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}

	var imageURLs []string
	if form, err := c.MultipartForm(); err == nil {
		files := form.File["images"]
		if len(files) > maxProductImages {
			files = files[:maxProductImages]
		}
		for _, file := range files {
			if !allowedImageTypes[file.Header.Get("Content-Type")] {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Only JPEG, PNG, GIF, or WEBP images are allowed"})
				return
			}
			url, err := services.UploadProductImage(file)
			if err != nil {
				log.Println("⚠️ Image upload failed:", err)
				continue
			}
			imageURLs = append(imageURLs, url)
		}
	}

	sellerType := models.RoleSeller
	if c.GetString("role") == models.RoleAdmin {
		sellerType = models.RoleAdmin
	}

	product := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Price:       price,
		Currency:    currency,
		Category:    category,
		Stock:       stock,
		Seller:      sellerID,
		SellerType:  sellerType,
		Images:      imageURLs,
		Reviews:     []models.Review{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.Collection(database.ColProducts).InsertOne(ctx, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	services.IndexProduct(product)

	log.Println("🛍️ Product listed:", product.Name)
	c.JSON(http.StatusCreated, product)
}

// GetProducts lists the public catalog (soft-deleted items excluded).
func GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Collection(database.ColProducts).Find(ctx, bson.M{"deleted": false})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchProducts serves full-text catalog search from Elasticsearch.
func SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}

	results, err := services.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search unavailable"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetMyProducts lists the authenticated seller's catalog.
func GetMyProducts(c *gin.Context) {
	sellerID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Collection(database.ColProducts).
		Find(ctx, bson.M{"seller": sellerID, "deleted": false})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product with reviewer names resolved.
func GetProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	err = database.Collection(database.ColProducts).
		FindOne(ctx, bson.M{"_id": productID, "deleted": false}).
		Decode(&product)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	attachReviewerNames(ctx, product.Reviews)

	c.JSON(http.StatusOK, product)
}

// UpdateProduct lets the owning seller edit their listing.
func UpdateProduct(c *gin.Context) {
	sellerID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Currency    *string  `json:"currency"`
		Category    *string  `json:"category"`
		Stock       *int     `json:"stock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.Price != nil {
		update["price"] = *input.Price
	}
	if input.Currency != nil {
		update["currency"] = *input.Currency
	}
	if input.Category != nil {
		update["category"] = *input.Category
	}
	if input.Stock != nil {
		update["stock"] = *input.Stock
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	err = database.Collection(database.ColProducts).
		FindOneAndUpdate(ctx, bson.M{"_id": productID, "seller": sellerID},
			bson.M{"$set": update}, findOneAndUpdateReturnAfter()).
		Decode(&product)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or unauthorized"})
		return
	}

	services.IndexProduct(product)

	c.JSON(http.StatusOK, product)
}

// DeleteProduct is the admin soft delete.
func DeleteProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
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
	if product.Deleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product already deleted"})
		return
	}

	_, err = database.Collection(database.ColProducts).
		UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": bson.M{"deleted": true}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	services.RemoveProductFromIndex(productID.Hex())

	c.JSON(http.StatusOK, gin.H{"message": "Product marked as deleted"})
}

// DeleteProductSeller is the owner's soft delete.
func DeleteProductSeller(c *gin.Context) {
	sellerID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Collection(database.ColProducts).
		UpdateOne(ctx, bson.M{"_id": productID, "seller": sellerID},
			bson.M{"$set": bson.M{"deleted": true}})
	if err != nil || result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or unauthorized"})
		return
	}

	services.RemoveProductFromIndex(productID.Hex())

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// attachReviewerNames resolves the user reference on each embedded review.
func attachReviewerNames(ctx context.Context, reviews []models.Review) {
	for i := range reviews {
		var reviewer models.User
		err := database.Collection(database.ColUsers).
			FindOne(ctx, bson.M{"_id": reviews[i].User}).
			Decode(&reviewer)
		if err == nil {
			reviews[i].UserName = reviewer.Name
		}
	}
}
