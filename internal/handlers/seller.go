package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"
	"quickcart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterSeller files a seller application; the account stays unusable
// until an admin approves it.
func RegisterSeller(c *gin.Context) {
	var input struct {
		Email        string `json:"email" binding:"required,email"`
		Password     string `json:"password" binding:"required,min=6"`
		Name         string `json:"name" binding:"required"`
		BusinessName string `json:"businessName" binding:"required"`
		PanCard      string `json:"panCard" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.Collection(database.ColSellers).CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seller already exists"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	seller := models.Seller{
		ID:                 primitive.NewObjectID(),
		Email:              input.Email,
		Password:           hash,
		Name:               input.Name,
		BusinessName:       input.BusinessName,
		PanCard:            input.PanCard,
		VerificationStatus: models.SellerPending,
		IsVerified:         false,
		CreatedAt:          time.Now(),
	}

	if _, err := database.Collection(database.ColSellers).InsertOne(ctx, seller); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	log.Println("🧾 Seller application filed:", seller.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Seller registration submitted for verification"})
}

// LoginSeller refuses pending and rejected applications.
func LoginSeller(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var seller models.Seller
	err := database.Collection(database.ColSellers).
		FindOne(ctx, bson.M{"email": input.Email}).
		Decode(&seller)
	if err != nil || !utils.CheckPassword(input.Password, seller.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	switch seller.VerificationStatus {
	case models.SellerRejected:
		c.JSON(http.StatusForbidden, gin.H{"error": "Your seller application has been rejected"})
		return
	case models.SellerPending:
		c.JSON(http.StatusForbidden, gin.H{"error": "Your application is pending approval"})
		return
	}

	token, err := utils.GenerateJWT(seller.ID.Hex(), seller.Email, models.RoleSeller)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           seller.ID.Hex(),
			"email":        seller.Email,
			"name":         seller.Name,
			"role":         models.RoleSeller,
			"businessName": seller.BusinessName,
		},
	})
}

// GetPendingSellers lists applications awaiting admin review.
func GetPendingSellers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Collection(database.ColSellers).
		Find(ctx, bson.M{"verificationStatus": models.SellerPending})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
		return
	}
	defer cursor.Close(ctx)

	sellers := []models.Seller{}
	if err := cursor.All(ctx, &sellers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode sellers"})
		return
	}

	c.JSON(http.StatusOK, sellers)
}

// VerifySeller approves or rejects an application.
func VerifySeller(c *gin.Context) {
	sellerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seller id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != models.SellerApproved && input.Status != models.SellerRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be approved or rejected"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"verificationStatus": input.Status,
		"isVerified":         input.Status == models.SellerApproved,
	}

	var seller models.Seller
	err = database.Collection(database.ColSellers).
		FindOneAndUpdate(ctx, bson.M{"_id": sellerID}, bson.M{"$set": update},
			findOneAndUpdateReturnAfter()).
		Decode(&seller)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
		return
	}

	log.Printf("✅ Seller %s %s", seller.Email, input.Status)
	c.JSON(http.StatusOK, seller)
}
