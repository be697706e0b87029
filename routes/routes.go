package routes

import (
	"net/http"
	"time"

	"styledecor/handlers"
	"styledecor/middleware"
	"styledecor/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user account and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.FirebaseAuthMiddleware(hb.AuthClient)
	admin := middleware.AdminOnlyMiddleware(hb.UserRepo, hb.RoleCache)

	r.GET("/users", auth, hb.SearchUsersHandler)
	r.GET("/users/:email/role", hb.GetUserRoleHandler)
	r.POST("/users", hb.RegisterUserHandler)
	r.PATCH("/users/:id/role", auth, admin, hb.UpdateUserRoleHandler)
}

// RegisterServiceRoutes registers catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.ListServicesHandler)
	r.GET("/services/home", hb.HomeServicesHandler)
	r.GET("/services/:id", hb.GetServiceHandler)
	r.POST("/services", hb.CreateServiceHandler)
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.FirebaseAuthMiddleware(hb.AuthClient)

	r.GET("/bookings", hb.ListBookingsHandler)
	r.GET("/bookings/decorator", hb.ListDecoratorBookingsHandler)
	r.POST("/bookings", hb.CreateBookingHandler)
	r.PATCH("/bookings/:id", hb.AssignDecoratorHandler)
	r.PATCH("/bookings/:id/accept", auth, hb.AcceptBookingHandler)
	r.PATCH("/bookings/:id/reject", auth, hb.RejectBookingHandler)
	r.PATCH("/bookings/:id/status", auth, hb.UpdateStatusHandler)
	r.PATCH("/bookings/:id/service-date", hb.SetServiceDateHandler)
	r.DELETE("/bookings/:id", hb.DeleteBookingHandler)
}

// RegisterPaymentRoutes registers checkout and settlement endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.FirebaseAuthMiddleware(hb.AuthClient)

	r.POST("/servicePayment-checkout-session", hb.CreateCheckoutSessionHandler)
	r.PATCH("/payment-success", hb.PaymentSuccessHandler)
	r.GET("/payments", auth, hb.ListPaymentsHandler)
}

// RegisterDecoratorRoutes registers decorator endpoints.
func RegisterDecoratorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.FirebaseAuthMiddleware(hb.AuthClient)
	admin := middleware.AdminOnlyMiddleware(hb.UserRepo, hb.RoleCache)

	r.GET("/decorators", hb.ListDecoratorsHandler)
	r.GET("/available-decorators", hb.AvailableDecoratorsHandler)
	r.POST("/decorators", hb.RegisterDecoratorHandler)
	r.PATCH("/decorators/:id", auth, admin, hb.DecideDecoratorHandler)
	r.DELETE("/decorators/:id", hb.DeleteDecoratorHandler)
}

// RegisterHealthRoute registers liveness endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "style decor server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterDecoratorRoutes(r, hb)
	RegisterHealthRoute(r)
}
