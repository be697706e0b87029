package handlers

import (
	userRepo "styledecor/database/repository/user"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle carries the assembled handlers plus the dependencies route
// registration needs for middleware wiring.
type HandlerBundle struct {
	// Middleware dependencies.
	AuthClient *auth.Client
	UserRepo   userRepo.UserRepository
	RoleCache  *redis.Client

	// User endpoints.
	SearchUsersHandler    gin.HandlerFunc
	GetUserRoleHandler    gin.HandlerFunc
	RegisterUserHandler   gin.HandlerFunc
	UpdateUserRoleHandler gin.HandlerFunc

	// Catalog endpoints.
	ListServicesHandler  gin.HandlerFunc
	HomeServicesHandler  gin.HandlerFunc
	GetServiceHandler    gin.HandlerFunc
	CreateServiceHandler gin.HandlerFunc

	// Booking endpoints.
	ListBookingsHandler          gin.HandlerFunc
	ListDecoratorBookingsHandler gin.HandlerFunc
	CreateBookingHandler         gin.HandlerFunc
	AssignDecoratorHandler       gin.HandlerFunc
	AcceptBookingHandler         gin.HandlerFunc
	RejectBookingHandler         gin.HandlerFunc
	UpdateStatusHandler          gin.HandlerFunc
	SetServiceDateHandler        gin.HandlerFunc
	DeleteBookingHandler         gin.HandlerFunc

	// Payment endpoints.
	CreateCheckoutSessionHandler gin.HandlerFunc
	PaymentSuccessHandler        gin.HandlerFunc
	ListPaymentsHandler          gin.HandlerFunc

	// Decorator endpoints.
	ListDecoratorsHandler      gin.HandlerFunc
	AvailableDecoratorsHandler gin.HandlerFunc
	RegisterDecoratorHandler   gin.HandlerFunc
	DecideDecoratorHandler     gin.HandlerFunc
	DeleteDecoratorHandler     gin.HandlerFunc
}
