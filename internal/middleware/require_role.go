package middleware

import (
	"net/http"

	"quickcart_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route to the "admin" role.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireSeller gates a route to sellers; admins pass too since admin-listed
// products carry the admin as their seller.
func RequireSeller(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || (role != models.RoleSeller && role != models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seller access required"})
		c.Abort()
		return
	}
	c.Next()
}
