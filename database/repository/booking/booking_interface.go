package bookingRepo

import (
	"styledecor/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DecoratorBucket selects the completed-vs-active split used by the
// decorator dashboard listing.
type DecoratorBucket string

const (
	BucketAll       DecoratorBucket = ""
	BucketCompleted DecoratorBucket = "completed"
	BucketActive    DecoratorBucket = "active"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)

	// List returns bookings newest-first, optionally filtered by requesting
	// user email and service status.
	List(email string, status models.ServiceStatus) ([]models.Booking, error)

	// ListByDecorator returns bookings for an assigned decorator, bucketed
	// completed vs not-completed.
	ListByDecorator(email string, bucket DecoratorBucket) ([]models.Booking, error)

	// UpdateWithTimeline applies a $set document and, when entry is non-nil,
	// appends it to the status timeline in the same write. The timeline is
	// append-only: no removal or rewrite operation exists.
	UpdateWithTimeline(id string, set bson.M, entry *models.TimelineEntry) error

	SetServiceDate(id, date string) error
	Delete(id string) error

	// ListStale returns bookings whose service date is strictly before the
	// given day, that are not completed and still hold an assigned decorator.
	ListStale(before string) ([]models.Booking, error)

	// DecoratorEmailsOnDate returns emails of decorators holding a
	// non-completed booking on the given service date.
	DecoratorEmailsOnDate(date string) ([]string, error)
}
