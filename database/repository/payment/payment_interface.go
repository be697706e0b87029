package paymentRepo

import "styledecor/models"

// PaymentRepository defines persistence operations for payment records.
// Payment documents are immutable once written; there is no update surface.
type PaymentRepository interface {
	Create(p *models.Payment) error

	// GetByTransactionID returns (nil, nil) when no payment exists for the
	// gateway transaction.
	GetByTransactionID(txID string) (*models.Payment, error)

	// ListByEmail returns a customer's payments, most recent first.
	ListByEmail(email string) ([]models.Payment, error)
}
