package models

import "time"

// ServiceStatus is the closed set of lifecycle states for a booking.
type ServiceStatus string

const (
	StatusPending           ServiceStatus = "pending"
	StatusAssigned          ServiceStatus = "assigned"
	StatusPlanning          ServiceStatus = "planning"
	StatusMaterialsPrepared ServiceStatus = "materials-prepared"
	StatusOnTheWay          ServiceStatus = "on-the-way"
	StatusSetupInProgress   ServiceStatus = "setup-in-progress"
	StatusCompleted         ServiceStatus = "completed"
)

// Valid reports whether s is a known lifecycle state.
func (s ServiceStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusPlanning, StatusMaterialsPrepared,
		StatusOnTheWay, StatusSetupInProgress, StatusCompleted:
		return true
	}
	return false
}

// DecoratorResponse records the assigned decorator's answer to an
// assignment. It is unset whenever no decorator is assigned.
type DecoratorResponse string

const (
	ResponseUnset    DecoratorResponse = ""
	ResponsePending  DecoratorResponse = "pending"
	ResponseAccepted DecoratorResponse = "accepted"
	ResponseRejected DecoratorResponse = "rejected"
)

// PaymentStatus marks whether a booking has been paid for.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// TimelineEntry is one append-only audit record of a status transition.
// Status is a string rather than a ServiceStatus because the timeline also
// records the "rejected-by-decorator" reset, which is not a forward state.
type TimelineEntry struct {
	Status    string    `bson:"status" json:"status"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy string    `bson:"updatedBy" json:"updatedBy"`
}

// TimelineRejected is the timeline marker for a decorator rejection.
const TimelineRejected = "rejected-by-decorator"

// DecoratorRef identifies the decorator assigned to a booking.
type DecoratorRef struct {
	ID    string `bson:"decoratorId" json:"decoratorId"`
	Name  string `bson:"decoratorName" json:"decoratorName"`
	Email string `bson:"decoratorEmail" json:"decoratorEmail"`
}

// Booking represents one decoration service engagement.
type Booking struct {
	ID                string            `bson:"id" json:"id"`
	UserEmail         string            `bson:"userEmail" json:"userEmail"`
	UserName          string            `bson:"userName,omitempty" json:"userName,omitempty"`
	ServiceID         string            `bson:"serviceId" json:"serviceId"`
	ServiceName       string            `bson:"serviceName" json:"serviceName"`
	ServiceDate       string            `bson:"serviceDate" json:"serviceDate"` // "YYYY-MM-DD"
	Cost              float64           `bson:"cost" json:"cost"`
	ServiceStatus     ServiceStatus     `bson:"serviceStatus" json:"serviceStatus"`
	DecoratorResponse DecoratorResponse `bson:"decoratorResponse,omitempty" json:"decoratorResponse,omitempty"`
	DecoratorID       string            `bson:"decoratorId,omitempty" json:"decoratorId,omitempty"`
	DecoratorName     string            `bson:"decoratorName,omitempty" json:"decoratorName,omitempty"`
	DecoratorEmail    string            `bson:"decoratorEmail,omitempty" json:"decoratorEmail,omitempty"`
	PaymentStatus     PaymentStatus     `bson:"paymentStatus" json:"paymentStatus"`
	TrackingID        string            `bson:"trackingId,omitempty" json:"trackingId,omitempty"`
	StatusTimeline    []TimelineEntry   `bson:"statusTimeline" json:"statusTimeline"`
	CreatedAt         time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Assigned reports whether the booking currently has an assigned decorator.
func (b *Booking) Assigned() bool {
	return b.DecoratorEmail != ""
}
