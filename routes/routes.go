package routes

import (
	"net/http"
	"time"

	"roastline/handlers"
	"roastline/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/session", hb.Auth.SessionHandler)

		// Protected routes (require a signed-in session).
		api.Use(middleware.RequireAuth())
		api.GET("/profile", hb.Auth.ProfileHandler)
		api.POST("/profile", hb.Auth.UpdateProfileHandler)
	}
}

// RegisterCartRoutes registers the cart endpoints. The cart exists for
// anonymous visitors too, so nothing here requires auth.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.Cart.GetCartHandler)
		api.POST("/items", hb.Cart.AddToCartHandler)
		api.PUT("/items", hb.Cart.SetQuantityHandler)
		api.POST("/items/adjust", hb.Cart.AdjustQuantityHandler)
		api.POST("/items/remove", hb.Cart.RemoveFromCartHandler)
		api.DELETE("", hb.Cart.ClearCartHandler)
	}
}

// RegisterCheckoutRoutes sets up the endpoints for the checkout wizard.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkoutGroup := r.Group("/api/checkout")
	{
		checkoutGroup.Use(middleware.RequireAuth())
		checkoutGroup.POST("", hb.Checkout.InitiateHandler)
		checkoutGroup.GET("/:sessionID", hb.Checkout.GetHandler)
		checkoutGroup.PUT("/:sessionID", hb.Checkout.UpdateHandler)
		checkoutGroup.POST("/:sessionID/next", hb.Checkout.NextHandler)
		checkoutGroup.POST("/:sessionID/back", hb.Checkout.BackHandler)
		checkoutGroup.POST("/:sessionID/address", hb.Checkout.SaveAddressHandler)
		checkoutGroup.DELETE("/:sessionID/address/:addressID", hb.Checkout.RemoveAddressHandler)
		checkoutGroup.POST("/:sessionID/personal-info", hb.Checkout.SavePersonalInfoHandler)
		checkoutGroup.POST("/:sessionID/confirm", hb.Checkout.ConfirmHandler)
		checkoutGroup.DELETE("/:sessionID", hb.Checkout.CancelHandler)
	}
}

// RegisterOrderRoutes registers product, order, and payment endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	products := r.Group("/api/products")
	{
		products.GET("/:id", hb.Orders.GetProductHandler)
		products.POST("/:id/select", hb.Orders.SelectProductHandler)
		products.DELETE("/selection", hb.Orders.ClearSelectionHandler)
	}

	orders := r.Group("/api/orders")
	{
		orders.Use(middleware.RequireAuth())
		orders.GET("/:id", hb.Orders.GetOrderHandler)
	}

	payments := r.Group("/api/payments")
	{
		payments.Use(middleware.RequireAuth())
		payments.GET("", hb.Orders.PaymentsHandler)
		payments.GET("/status/:id", hb.Orders.PaymentStatusHandler)
	}

	r.POST("/api/format", hb.Orders.FormatPreviewHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roastline"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.SessionMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
}
