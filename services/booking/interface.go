package booking

import (
	"context"

	bookingRepo "styledecor/database/repository/booking"
	"styledecor/models"
)

// BookingService owns the booking lifecycle: creation, decorator
// assignment and response, status progression, and the stale-booking
// release sweep.
type BookingService interface {
	Create(ctx context.Context, b *models.Booking) (*models.Booking, error)
	List(ctx context.Context, email string, status models.ServiceStatus) ([]models.Booking, error)
	ListForDecorator(ctx context.Context, email string, bucket bookingRepo.DecoratorBucket) ([]models.Booking, error)

	Assign(ctx context.Context, id string, ref models.DecoratorRef) error
	Accept(ctx context.Context, id, callerEmail string) error
	Reject(ctx context.Context, id, callerEmail string) error
	Advance(ctx context.Context, id, callerEmail string, target models.ServiceStatus) error

	// MarkPaid records a settled payment on the booking: paid, re-opened to
	// pending for scheduling, tracking ID attached.
	MarkPaid(ctx context.Context, id, trackingID string) error

	SetServiceDate(ctx context.Context, id, date string) error
	Delete(ctx context.Context, id string) error

	// ReleaseStale force-completes bookings whose service date has passed
	// and frees their decorators. Returns the number of bookings released.
	ReleaseStale(ctx context.Context) (int, error)
}
