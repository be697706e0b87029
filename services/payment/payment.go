package payment

import (
	"context"
	"fmt"
	"time"

	paymentRepo "styledecor/database/repository/payment"
	"styledecor/models"
	"styledecor/services/booking"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// DefaultPaymentService is the production payment service.
type DefaultPaymentService struct {
	Bookings   booking.BookingService
	Payments   paymentRepo.PaymentRepository
	Checkout   CheckoutClient
	SiteDomain string
	Logger     *zap.Logger
}

// CreateCheckoutSession opens a hosted Stripe checkout session for a
// booking and returns the redirect URL. The price is whole currency units.
func (s *DefaultPaymentService) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error) {
	if req.BookingID == "" || req.ServiceName == "" {
		return "", fmt.Errorf("booking reference and service name are required")
	}

	amount := int64(req.Price) * 100

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ServiceName),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(req.UserEmail),
		SuccessURL:    stripe.String(s.SiteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(s.SiteDomain + "/dashboard/payment-cancelled"),
	}
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("serviceName", req.ServiceName)

	sess, err := s.Checkout.NewSession(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}

// Settle confirms a checkout session against the gateway. A transaction
// that is already recorded returns the previously assigned tracking ID and
// creates nothing.
func (s *DefaultPaymentService) Settle(ctx context.Context, sessionID string) (*SettleResult, error) {
	sess, err := s.Checkout.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session %s: %w", sessionID, err)
	}
	if sess.PaymentIntent == nil {
		return nil, fmt.Errorf("checkout session %s has no payment intent", sessionID)
	}
	txID := sess.PaymentIntent.ID

	existing, err := s.Payments.GetByTransactionID(txID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up payment: %w", err)
	}
	if existing != nil {
		return &SettleResult{
			Settled:        true,
			AlreadySettled: true,
			TrackingID:     existing.TrackingID,
			TransactionID:  txID,
		}, nil
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return &SettleResult{Settled: false, TransactionID: txID}, nil
	}

	trackingID, err := booking.GenerateTrackingID()
	if err != nil {
		return nil, err
	}

	bookingID := sess.Metadata["bookingId"]
	if err := s.Bookings.MarkPaid(ctx, bookingID, trackingID); err != nil {
		return nil, fmt.Errorf("failed to mark booking %s paid: %w", bookingID, err)
	}

	record := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     bookingID,
		ServiceName:   sess.Metadata["serviceName"],
		CustomerEmail: sess.CustomerEmail,
		Amount:        float64(sess.AmountTotal) / 100,
		Currency:      string(sess.Currency),
		TransactionID: txID,
		PaymentStatus: string(sess.PaymentStatus),
		TrackingID:    trackingID,
		PaidAt:        time.Now(),
	}
	if err := s.Payments.Create(record); err != nil {
		// The unique transaction index rejects a concurrent settle; in that
		// case the first writer's record wins.
		if prior, lookupErr := s.Payments.GetByTransactionID(txID); lookupErr == nil && prior != nil {
			return &SettleResult{
				Settled:        true,
				AlreadySettled: true,
				TrackingID:     prior.TrackingID,
				TransactionID:  txID,
			}, nil
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.Logger.Info("payment settled",
		zap.String("bookingId", bookingID),
		zap.String("transactionId", txID),
		zap.String("trackingId", trackingID))

	return &SettleResult{
		Settled:       true,
		TrackingID:    trackingID,
		TransactionID: txID,
	}, nil
}

// History returns a customer's payments, most recent first.
func (s *DefaultPaymentService) History(ctx context.Context, email string) ([]models.Payment, error) {
	payments, err := s.Payments.ListByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
