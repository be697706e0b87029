package models

import "time"

// Payment is an immutable record of one settled gateway transaction. The
// payments collection carries a unique index on transactionId, which is what
// enforces at-most-one record per transaction.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	ServiceName   string    `bson:"serviceName" json:"serviceName"`
	CustomerEmail string    `bson:"customerEmail" json:"customerEmail"`
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	TrackingID    string    `bson:"trackingId" json:"trackingId"`
	PaidAt        time.Time `bson:"paidAt" json:"paidAt"`
}
