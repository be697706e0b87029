package handlers

import (
	"net/http"

	bookingRepo "styledecor/database/repository/booking"
	"styledecor/middleware"
	"styledecor/models"
	"styledecor/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// writeLifecycleError maps a coded lifecycle error to an HTTP response.
func writeLifecycleError(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeInvalidTransition:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
	case booking.CodeForbidden:
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	case booking.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case booking.CodeInvalidReference:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}

// ListBookings handles GET /bookings with optional email and serviceStatus
// filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	status := models.ServiceStatus(c.Query("serviceStatus"))

	bookings, err := h.Service.List(c.Request.Context(), email, status)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListDecoratorBookings handles GET /bookings/decorator; any serviceStatus
// other than "completed" selects the not-completed bucket.
func (h *BookingHandler) ListDecoratorBookings(c *gin.Context) {
	email := c.Query("decoratorEmail")

	bucket := bookingRepo.BucketAll
	if status := c.Query("serviceStatus"); status != "" {
		if status == string(models.StatusCompleted) {
			bucket = bookingRepo.BucketCompleted
		} else {
			bucket = bookingRepo.BucketActive
		}
	}

	bookings, err := h.Service.ListForDecorator(c.Request.Context(), email, bucket)
	if err != nil {
		getLogger(c).Error("Failed to list decorator bookings", zap.Error(err))
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &b)
	if err != nil {
		getLogger(c).Error("Failed to create booking", zap.Error(err))
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// assignRequest is the admin assignment body.
type assignRequest struct {
	DecoratorID    string `json:"decoratorId"`
	DecoratorName  string `json:"decoratorName"`
	DecoratorEmail string `json:"decoratorEmail"`
}

// AssignDecorator handles PATCH /bookings/:id (admin).
func (h *BookingHandler) AssignDecorator(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	ref := models.DecoratorRef{
		ID:    req.DecoratorID,
		Name:  req.DecoratorName,
		Email: req.DecoratorEmail,
	}
	if err := h.Service.Assign(c.Request.Context(), c.Param("id"), ref); err != nil {
		getLogger(c).Error("Assignment Error", zap.Error(err))
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AcceptBooking handles PATCH /bookings/:id/accept; the caller must be the
// assigned decorator.
func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	email := middleware.AuthEmail(c)
	if err := h.Service.Accept(c.Request.Context(), c.Param("id"), email); err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RejectBooking handles PATCH /bookings/:id/reject.
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	email := middleware.AuthEmail(c)
	if err := h.Service.Reject(c.Request.Context(), c.Param("id"), email); err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// statusRequest is the decorator progress body.
type statusRequest struct {
	ServiceStatus string `json:"serviceStatus"`
}

// UpdateStatus handles PATCH /bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	email := middleware.AuthEmail(c)
	err := h.Service.Advance(c.Request.Context(), c.Param("id"), email, models.ServiceStatus(req.ServiceStatus))
	if err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// serviceDateRequest is the scheduling body.
type serviceDateRequest struct {
	ServiceDate string `json:"serviceDate"`
}

// SetServiceDate handles PATCH /bookings/:id/service-date.
func (h *BookingHandler) SetServiceDate(c *gin.Context) {
	var req serviceDateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ServiceDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Service date required"})
		return
	}

	if err := h.Service.SetServiceDate(c.Request.Context(), c.Param("id"), req.ServiceDate); err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
