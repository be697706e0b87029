package models

import "time"

// ApprovalStatus is the admin-approval gate for a decorator account.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// WorkStatus is the cached availability flag on a decorator. It is kept in
// sync with active bookings by paired writes, not derived at query time, so
// it can drift if a paired write is missed.
type WorkStatus string

const (
	WorkAvailable WorkStatus = "available"
	WorkBusy      WorkStatus = "busy"
)

// Decorator represents a service-provider entity.
type Decorator struct {
	ID         string         `bson:"id" json:"id"`
	Email      string         `bson:"email" json:"email"`
	Name       string         `bson:"name" json:"name"`
	District   string         `bson:"district,omitempty" json:"district,omitempty"`
	Status     ApprovalStatus `bson:"status" json:"status"`
	WorkStatus WorkStatus     `bson:"workStatus,omitempty" json:"workStatus,omitempty"`
	CreatedAt  time.Time      `bson:"createdAt" json:"createdAt"`
}
