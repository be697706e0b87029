package payment

import (
	"context"
	"errors"
	"regexp"
	"testing"

	bookingRepo "styledecor/database/repository/booking"
	"styledecor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// --- Mock CheckoutClient ---

type mockCheckout struct {
	newSessionFn func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	getSessionFn func(id string) (*stripe.CheckoutSession, error)
}

func (m *mockCheckout) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return m.newSessionFn(params)
}

func (m *mockCheckout) GetSession(id string) (*stripe.CheckoutSession, error) {
	return m.getSessionFn(id)
}

// --- Mock PaymentRepository ---

type mockPaymentRepo struct {
	records   map[string]*models.Payment
	createErr error
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{records: make(map[string]*models.Payment)}
}

func (m *mockPaymentRepo) Create(p *models.Payment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.records[p.TransactionID]; ok {
		return errors.New("duplicate key error")
	}
	m.records[p.TransactionID] = p
	return nil
}

func (m *mockPaymentRepo) GetByTransactionID(txID string) (*models.Payment, error) {
	return m.records[txID], nil
}

func (m *mockPaymentRepo) ListByEmail(email string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.records {
		if p.CustomerEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

// --- Mock BookingService ---

type mockBookingService struct {
	markPaidFn func(ctx context.Context, id, trackingID string) error
}

func (m *mockBookingService) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	return b, nil
}
func (m *mockBookingService) List(ctx context.Context, email string, status models.ServiceStatus) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingService) ListForDecorator(ctx context.Context, email string, bucket bookingRepo.DecoratorBucket) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingService) Assign(ctx context.Context, id string, ref models.DecoratorRef) error {
	return nil
}
func (m *mockBookingService) Accept(ctx context.Context, id, callerEmail string) error { return nil }
func (m *mockBookingService) Reject(ctx context.Context, id, callerEmail string) error { return nil }
func (m *mockBookingService) Advance(ctx context.Context, id, callerEmail string, target models.ServiceStatus) error {
	return nil
}
func (m *mockBookingService) MarkPaid(ctx context.Context, id, trackingID string) error {
	if m.markPaidFn != nil {
		return m.markPaidFn(ctx, id, trackingID)
	}
	return nil
}
func (m *mockBookingService) SetServiceDate(ctx context.Context, id, date string) error { return nil }
func (m *mockBookingService) Delete(ctx context.Context, id string) error               { return nil }
func (m *mockBookingService) ReleaseStale(ctx context.Context) (int, error)             { return 0, nil }

func paidSession() *stripe.CheckoutSession {
	return &stripe.CheckoutSession{
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_test_123"},
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		CustomerEmail: "customer@example.com",
		AmountTotal:   45000,
		Currency:      stripe.CurrencyUSD,
		Metadata: map[string]string{
			"bookingId":   "b1",
			"serviceName": "Birthday Decoration",
		},
	}
}

func newTestPaymentService(repo *mockPaymentRepo, checkout *mockCheckout, bookings *mockBookingService) *DefaultPaymentService {
	return &DefaultPaymentService{
		Bookings:   bookings,
		Payments:   repo,
		Checkout:   checkout,
		SiteDomain: "https://styledecor.example",
		Logger:     zap.NewNop(),
	}
}

// --- Tests ---

func TestCreateCheckoutSession_ReturnsRedirectURL(t *testing.T) {
	var captured *stripe.CheckoutSessionParams
	checkout := &mockCheckout{
		newSessionFn: func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			captured = params
			return &stripe.CheckoutSession{URL: "https://checkout.stripe.com/c/pay/cs_test"}, nil
		},
	}
	svc := newTestPaymentService(newMockPaymentRepo(), checkout, &mockBookingService{})

	url, err := svc.CreateCheckoutSession(context.Background(), CheckoutRequest{
		BookingID:   "b1",
		ServiceName: "Birthday Decoration",
		UserEmail:   "customer@example.com",
		Price:       450,
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test", url)
	assert.Equal(t, int64(45000), *captured.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "customer@example.com", *captured.CustomerEmail)
	// CheckoutSessionParams carries its own Metadata field, separate from
	// the embedded Params.Metadata.
	assert.Equal(t, "b1", captured.Metadata["bookingId"])
	assert.Equal(t, "Birthday Decoration", captured.Metadata["serviceName"])
}

func TestCreateCheckoutSession_RequiresBookingReference(t *testing.T) {
	svc := newTestPaymentService(newMockPaymentRepo(), &mockCheckout{}, &mockBookingService{})

	_, err := svc.CreateCheckoutSession(context.Background(), CheckoutRequest{ServiceName: "x"})

	assert.Error(t, err)
}

func TestSettle_RecordsPaymentAndMarksBookingPaid(t *testing.T) {
	repo := newMockPaymentRepo()
	checkout := &mockCheckout{
		getSessionFn: func(id string) (*stripe.CheckoutSession, error) { return paidSession(), nil },
	}
	var markedBooking, markedTracking string
	bookings := &mockBookingService{markPaidFn: func(ctx context.Context, id, trackingID string) error {
		markedBooking, markedTracking = id, trackingID
		return nil
	}}
	svc := newTestPaymentService(repo, checkout, bookings)

	result, err := svc.Settle(context.Background(), "cs_test")

	assert.NoError(t, err)
	assert.True(t, result.Settled)
	assert.False(t, result.AlreadySettled)
	assert.Regexp(t, regexp.MustCompile(`^PRCL-\d{8}-[0-9A-F]{6}$`), result.TrackingID)
	assert.Equal(t, "b1", markedBooking)
	assert.Equal(t, result.TrackingID, markedTracking)

	record := repo.records["pi_test_123"]
	assert.NotNil(t, record)
	assert.Equal(t, 450.0, record.Amount)
	assert.Equal(t, result.TrackingID, record.TrackingID)
}

func TestSettle_SecondCallReturnsExistingTrackingID(t *testing.T) {
	repo := newMockPaymentRepo()
	checkout := &mockCheckout{
		getSessionFn: func(id string) (*stripe.CheckoutSession, error) { return paidSession(), nil },
	}
	markPaidCalls := 0
	bookings := &mockBookingService{markPaidFn: func(ctx context.Context, id, trackingID string) error {
		markPaidCalls++
		return nil
	}}
	svc := newTestPaymentService(repo, checkout, bookings)

	first, err := svc.Settle(context.Background(), "cs_test")
	assert.NoError(t, err)

	second, err := svc.Settle(context.Background(), "cs_test")
	assert.NoError(t, err)

	assert.True(t, second.AlreadySettled)
	assert.Equal(t, first.TrackingID, second.TrackingID)
	assert.Equal(t, 1, markPaidCalls, "booking settles exactly once per transaction")
	assert.Len(t, repo.records, 1)
}

func TestSettle_UnpaidSessionCreatesNothing(t *testing.T) {
	sess := paidSession()
	sess.PaymentStatus = stripe.CheckoutSessionPaymentStatusUnpaid
	repo := newMockPaymentRepo()
	checkout := &mockCheckout{
		getSessionFn: func(id string) (*stripe.CheckoutSession, error) { return sess, nil },
	}
	svc := newTestPaymentService(repo, checkout, &mockBookingService{})

	result, err := svc.Settle(context.Background(), "cs_test")

	assert.NoError(t, err)
	assert.False(t, result.Settled)
	assert.Empty(t, repo.records)
}

func TestSettle_MissingPaymentIntent(t *testing.T) {
	checkout := &mockCheckout{
		getSessionFn: func(id string) (*stripe.CheckoutSession, error) {
			return &stripe.CheckoutSession{}, nil
		},
	}
	svc := newTestPaymentService(newMockPaymentRepo(), checkout, &mockBookingService{})

	_, err := svc.Settle(context.Background(), "cs_test")

	assert.Error(t, err)
}
