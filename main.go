// File: roastline/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roastline/cart"
	"roastline/config"
	"roastline/gateway"
	"roastline/handlers"
	"roastline/middleware"
	"roastline/routes"
	"roastline/services/auth"
	checkoutSvc "roastline/services/checkout"
	"roastline/services/order"
	"roastline/services/payment"
	"roastline/services/shipping"
	"roastline/session"
	"roastline/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Store API client.
	apiClient := gateway.NewClient(config.AppConfig.APIBaseURL, config.APITimeout(), logger)

	// Domain services.
	authService := &auth.DefaultAuthService{Gateway: apiClient}
	shippingService := &shipping.DefaultShippingService{Gateway: apiClient}
	orderService := &order.DefaultOrderService{Gateway: apiClient}
	paymentService := &payment.DefaultPaymentService{Gateway: apiClient}

	// Checkout wizard sessions live in Redis when configured, in process
	// memory otherwise.
	var checkoutStore checkoutSvc.SessionStore
	if config.AppConfig.RedisAddr != "" {
		checkoutStore = &checkoutSvc.RedisSessionStore{Client: utils.GetCheckoutCacheClient()}
	} else {
		logger.Sugar().Warn("main: no Redis configured, using in-memory checkout sessions")
		checkoutStore = checkoutSvc.NewMemorySessionStore()
	}
	checkoutService := &checkoutSvc.DefaultCheckoutService{
		Store:        checkoutStore,
		Auth:         authService,
		Shipping:     shippingService,
		Orders:       orderService,
		TTL:          config.CheckoutSessionTTL(),
		MaxAddresses: config.AppConfig.MaxSavedAddresses,
		Logger:       logger,
	}

	// Cart store; drops a session's cart when its auth is cleared.
	cartStore := cart.NewStore(config.AppConfig.CartMaxQty, session.Events)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(authService),
		Cart:     handlers.NewCartHandler(cartStore, config.AppConfig.DrawerMaxQty),
		Checkout: handlers.NewCheckoutHandler(checkoutService),
		Orders:   handlers.NewOrderHandler(orderService, paymentService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
