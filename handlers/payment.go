package handlers

import (
	"net/http"

	"styledecor/middleware"
	"styledecor/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes checkout and settlement endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateCheckoutSession handles POST /servicePayment-checkout-session and
// returns the hosted checkout redirect URL.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req payment.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	url, err := h.Service.CreateCheckoutSession(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Error("Failed to create checkout session", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to create checkout session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// PaymentSuccess handles PATCH /payment-success?session_id=...; settling the
// same session twice returns the original tracking ID.
func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "session_id required"})
		return
	}

	result, err := h.Service.Settle(c.Request.Context(), sessionID)
	if err != nil {
		getLogger(c).Error("Failed to settle payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}
	if result.AlreadySettled {
		c.JSON(http.StatusOK, gin.H{
			"message":       "payment already done",
			"transactionId": result.TransactionID,
			"trackingId":    result.TrackingID,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListPayments handles GET /payments (auth); callers may only query their
// own email.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	email := c.Query("email")
	if email != middleware.AuthEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	payments, err := h.Service.History(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("Failed to list payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
