package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"quickcart_back_end/internal/cache"

	"github.com/gin-gonic/gin"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	LoginWindow    = 15 * time.Minute
	RegisterWindow = 30 * time.Minute
)

// emailRateLimit throttles an auth endpoint per target email. The body is
// read ahead of the handler and put back afterwards.
func emailRateLimit(scope string, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Next()
			return
		}

		if cache.RateLimitExceeded(scope, input.Email, max, window) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("Too many attempts. Try again in %d minutes", int(window.Minutes())),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func LoginRateLimit() gin.HandlerFunc {
	return emailRateLimit("login", LoginMaxAttempts, LoginWindow)
}

func RegisterRateLimit() gin.HandlerFunc {
	return emailRateLimit("register", RegisterMaxAttempts, RegisterWindow)
}
