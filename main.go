// File: styledecor/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"styledecor/config"
	"styledecor/cron"
	"styledecor/database"
	bookingRepoPkg "styledecor/database/repository/booking"
	catalogRepoPkg "styledecor/database/repository/catalog"
	decoratorRepoPkg "styledecor/database/repository/decorator"
	paymentRepoPkg "styledecor/database/repository/payment"
	userRepoPkg "styledecor/database/repository/user"
	"styledecor/handlers"
	"styledecor/middleware"
	"styledecor/routes"
	"styledecor/services/booking"
	"styledecor/services/catalog"
	"styledecor/services/decorator"
	"styledecor/services/payment"
	"styledecor/services/user"
	"styledecor/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.MongoURI)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer database.Disconnect(client)
	db := client.Database(config.AppConfig.MongoDatabase)

	utils.InitRoleCache()
	utils.FirebaseInit()
	utils.StartHealthMonitor(utils.GetRoleCacheClient(), client)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	decoratorRepo := decoratorRepoPkg.NewMongoDecoratorRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo(db)

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Cache:  utils.GetRoleCacheClient(),
		Logger: logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: serviceRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:          bookingRepo,
		DecoratorRepo: decoratorRepo,
		Logger:        logger,
	}
	decoratorService := &decorator.DefaultDecoratorService{
		Repo:     decoratorRepo,
		Bookings: bookingRepo,
		Users:    userRepo,
		Cache:    utils.GetRoleCacheClient(),
		Logger:   logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Bookings:   bookingService,
		Payments:   paymentRepo,
		Checkout:   payment.StripeCheckoutClient{},
		SiteDomain: config.AppConfig.SiteDomain,
		Logger:     logger,
	}

	userHandler := handlers.NewUserHandler(userService)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	decoratorHandler := handlers.NewDecoratorHandler(decoratorService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthClient: utils.AuthClient,
		UserRepo:   userRepo,
		RoleCache:  utils.GetRoleCacheClient(),

		// User endpoints.
		SearchUsersHandler:    userHandler.SearchUsers,
		GetUserRoleHandler:    userHandler.GetUserRole,
		RegisterUserHandler:   userHandler.RegisterUser,
		UpdateUserRoleHandler: userHandler.UpdateUserRole,

		// Catalog endpoints.
		ListServicesHandler:  serviceHandler.ListServices,
		HomeServicesHandler:  serviceHandler.HomeServices,
		GetServiceHandler:    serviceHandler.GetService,
		CreateServiceHandler: serviceHandler.CreateService,

		// Booking endpoints.
		ListBookingsHandler:          bookingHandler.ListBookings,
		ListDecoratorBookingsHandler: bookingHandler.ListDecoratorBookings,
		CreateBookingHandler:         bookingHandler.CreateBooking,
		AssignDecoratorHandler:       bookingHandler.AssignDecorator,
		AcceptBookingHandler:         bookingHandler.AcceptBooking,
		RejectBookingHandler:         bookingHandler.RejectBooking,
		UpdateStatusHandler:          bookingHandler.UpdateStatus,
		SetServiceDateHandler:        bookingHandler.SetServiceDate,
		DeleteBookingHandler:         bookingHandler.DeleteBooking,

		// Payment endpoints.
		CreateCheckoutSessionHandler: paymentHandler.CreateCheckoutSession,
		PaymentSuccessHandler:        paymentHandler.PaymentSuccess,
		ListPaymentsHandler:          paymentHandler.ListPayments,

		// Decorator endpoints.
		ListDecoratorsHandler:      decoratorHandler.ListDecorators,
		AvailableDecoratorsHandler: decoratorHandler.AvailableDecorators,
		RegisterDecoratorHandler:   decoratorHandler.RegisterDecorator,
		DecideDecoratorHandler:     decoratorHandler.DecideDecorator,
		DeleteDecoratorHandler:     decoratorHandler.DeleteDecorator,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the release sweep worker.
	worker, scheduler := cron.InitReleaseWorker(bookingService)

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

	scheduler.Shutdown()
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
