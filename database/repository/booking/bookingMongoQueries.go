// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"styledecor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns bookings newest-first, optionally filtered by user email and
// service status.
func (r *MongoBookingRepo) List(email string, status models.ServiceStatus) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["userEmail"] = email
	}
	if status != "" {
		filter["serviceStatus"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListByDecorator returns bookings assigned to a decorator, bucketed
// completed vs not-completed. The two-way bucket is the only status split
// the decorator dashboard uses.
func (r *MongoBookingRepo) ListByDecorator(email string, bucket DecoratorBucket) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["decoratorEmail"] = email
	}
	switch bucket {
	case BucketCompleted:
		filter["serviceStatus"] = models.StatusCompleted
	case BucketActive:
		filter["serviceStatus"] = bson.M{"$nin": bson.A{models.StatusCompleted}}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list decorator bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode decorator bookings: %w", err)
	}
	return bookings, nil
}

// ListStale returns bookings dated strictly before the given day that are
// not completed and still hold an assigned decorator.
func (r *MongoBookingRepo) ListStale(before string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"serviceDate":    bson.M{"$lt": before},
		"serviceStatus":  bson.M{"$ne": models.StatusCompleted},
		"decoratorEmail": bson.M{"$nin": bson.A{nil, ""}},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode stale bookings: %w", err)
	}
	return bookings, nil
}

// DecoratorEmailsOnDate returns the emails of decorators holding a
// non-completed booking on the given date.
func (r *MongoBookingRepo) DecoratorEmailsOnDate(date string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"serviceDate":    date,
		"decoratorEmail": bson.M{"$nin": bson.A{nil, ""}},
		"serviceStatus":  bson.M{"$ne": models.StatusCompleted},
	}
	opts := options.Find().SetProjection(bson.M{"decoratorEmail": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings on date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		DecoratorEmail string `bson:"decoratorEmail"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode booked decorators: %w", err)
	}

	emails := make([]string, 0, len(rows))
	for _, row := range rows {
		emails = append(emails, row.DecoratorEmail)
	}
	return emails, nil
}
