package routes

import (
	"quickcart_back_end/internal/handlers"
	"quickcart_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.POST("/register", middleware.RegisterRateLimit(), handlers.Register)
	auth.POST("/verify-otp", handlers.VerifyOTP)
	auth.POST("/login", middleware.LoginRateLimit(), handlers.Login)

	// Sellers
	seller := api.Group("/seller")
	seller.POST("/register", middleware.RegisterRateLimit(), handlers.RegisterSeller)
	seller.POST("/login", middleware.LoginRateLimit(), handlers.LoginSeller)
	seller.GET("/pending", middleware.AuthRequired(), middleware.RequireAdmin, handlers.GetPendingSellers)
	seller.PUT("/verify/:id", middleware.AuthRequired(), middleware.RequireAdmin, handlers.VerifySeller)

	// Catalog
	products := api.Group("/products")
	products.GET("", handlers.GetProducts)
	products.GET("/search", handlers.SearchProducts)
	products.GET("/my-products", middleware.AuthRequired(), middleware.RequireSeller, handlers.GetMyProducts)
	products.GET("/:id", handlers.GetProduct)
	products.POST("", middleware.AuthRequired(), middleware.RequireSeller, handlers.CreateProduct)
	products.PUT("/:id", middleware.AuthRequired(), middleware.RequireSeller, handlers.UpdateProduct)
	products.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin, handlers.DeleteProduct)
	products.DELETE("/:id/seller", middleware.AuthRequired(), middleware.RequireSeller, handlers.DeleteProductSeller)
	products.POST("/:id/reviews", middleware.AuthRequired(), handlers.AddReview)

	// Cart
	cart := api.Group("/cart", middleware.AuthRequired())
	cart.GET("", handlers.GetCart)
	cart.POST("", handlers.AddToCart)
	cart.PUT("/:productId", handlers.UpdateCartItem)
	cart.DELETE("/:productId", handlers.RemoveFromCart)

	// Wishlist
	wishlist := api.Group("/wishlist", middleware.AuthRequired())
	wishlist.GET("", handlers.GetWishlist)
	wishlist.POST("", handlers.AddToWishlist)
	wishlist.DELETE("/:productId", handlers.RemoveFromWishlist)

	// Orders
	orders := api.Group("/orders", middleware.AuthRequired())
	orders.POST("", handlers.PlaceOrder)
	orders.GET("", handlers.GetMyOrders)
	orders.GET("/seller-orders", middleware.RequireSeller, handlers.GetSellerOrders)
	orders.GET("/all", middleware.RequireAdmin, handlers.GetAllOrders)
	orders.PUT("/:id/seller", middleware.RequireSeller, handlers.UpdateOrderStatusSeller)
	orders.PUT("/:id", middleware.RequireAdmin, handlers.UpdateOrderStatusAdmin)

	// Returns and replacements
	returns := api.Group("/returns", middleware.AuthRequired())
	returns.POST("", handlers.CreateReturn)
	returns.GET("", handlers.GetMyReturns)
	returns.GET("/seller", middleware.RequireSeller, handlers.GetSellerReturns)
	returns.PUT("/:id/seller", middleware.RequireSeller, handlers.ResolveReturn)

	// Notifications
	notifications := api.Group("/notifications", middleware.AuthRequired())
	notifications.GET("", handlers.GetNotifications)
	notifications.PUT("/:id/read", handlers.MarkNotificationRead)

	// Profile
	profile := api.Group("/profile", middleware.AuthRequired())
	profile.POST("", handlers.GetProfile)
	profile.POST("/updateAddress", handlers.UpdatePrimaryAddress)
	profile.POST("/checkprimaryAddress", handlers.CheckPrimaryAddress)

	// Admin
	users := api.Group("/users", middleware.AuthRequired(), middleware.RequireAdmin)
	users.GET("", handlers.GetUsers)
	users.GET("/stats", handlers.GetStats)
	users.POST("/manageAdmin", handlers.ManageAdmin)
}
