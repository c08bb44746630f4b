package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// currentUserID pulls the authenticated user's id out of the Gin context.
// Aborts with 401 when absent or malformed.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func findOneAndUpdateReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

func replaceUpsert() *options.ReplaceOptions {
	return options.Replace().SetUpsert(true)
}
