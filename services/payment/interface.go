package payment

import (
	"context"

	"styledecor/models"
)

// CheckoutRequest carries the fields needed to open a hosted checkout
// session for a booking.
type CheckoutRequest struct {
	BookingID   string  `json:"bookingId"`
	ServiceName string  `json:"serviceName"`
	UserEmail   string  `json:"userEmail"`
	Price       float64 `json:"price"`
}

// SettleResult reports the outcome of confirming a checkout session.
type SettleResult struct {
	Settled        bool   `json:"success"`
	AlreadySettled bool   `json:"alreadySettled,omitempty"`
	TrackingID     string `json:"trackingId,omitempty"`
	TransactionID  string `json:"transactionId,omitempty"`
}

// PaymentService fronts the payment gateway: opening checkout sessions,
// settling them, and reading back payment history.
type PaymentService interface {
	// CreateCheckoutSession returns the hosted checkout redirect URL.
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error)

	// Settle confirms a checkout session. Settling a transaction that is
	// already recorded is a no-op that returns the original tracking ID.
	Settle(ctx context.Context, sessionID string) (*SettleResult, error)

	History(ctx context.Context, email string) ([]models.Payment, error)
}
