package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"quickcart_back_end/internal/cache"
	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"
	"quickcart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Register starts the OTP flow: the account is parked in Redis with a
// 10-minute TTL and only lands in MongoDB once the code is verified. When
// the OTP email cannot be delivered the account is created right away,
// flagged skip_otp, so a broken SMTP setup never blocks signups.
func Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Name     string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.Collection(database.ColUsers).CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	otp := utils.GenerateOTP()
	if err := cache.StorePendingRegistration(cache.PendingRegistration{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		OTP:          otp,
	}); err != nil {
		log.Println("❌ Pending registration store failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	if err := utils.SendOTPEmail(input.Email, otp); err != nil {
		log.Println("⚠️ OTP email failed, creating account without verification:", err)

		user, token, createErr := createVerifiedUser(ctx, input.Email, input.Name, hash)
		if createErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		cache.DeletePendingRegistration(input.Email)

		c.JSON(http.StatusOK, gin.H{
			"token":    token,
			"user":     userPayload(user),
			"skip_otp": true,
		})
		return
	}

	log.Println("📧 OTP sent to", input.Email)
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to email"})
}

// VerifyOTP finishes registration: the pending record must exist, match the
// code and not be expired (expiry is enforced by the Redis TTL).
func VerifyOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pending, err := cache.GetPendingRegistration(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
		return
	}
	if pending == nil || pending.OTP != input.OTP {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, token, err := createVerifiedUser(ctx, pending.Email, pending.Name, pending.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
		return
	}
	cache.DeletePendingRegistration(input.Email)

	log.Println("✅ User verified and created:", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

func Login(c *gin.Context) {
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

	var user models.User
	err := database.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"email": input.Email}).
		Decode(&user)
	if err != nil || !utils.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

func createVerifiedUser(ctx context.Context, email, name, passwordHash string) (models.User, string, error) {
	user := models.User{
		ID:         primitive.NewObjectID(),
		Email:      email,
		Password:   passwordHash,
		Name:       name,
		Role:       models.RoleUser,
		IsVerified: true,
		CreatedAt:  time.Now(),
	}

	if _, err := database.Collection(database.ColUsers).InsertOne(ctx, user); err != nil {
		return models.User{}, "", err
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func userPayload(user models.User) gin.H {
	return gin.H{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}
}
