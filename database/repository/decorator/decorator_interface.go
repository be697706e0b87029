package decoratorRepo

import "styledecor/models"

// DecoratorRepository defines persistence operations for decorators.
type DecoratorRepository interface {
	Create(d *models.Decorator) error
	GetByID(id string) (*models.Decorator, error)

	// List filters by approval status and district; empty values mean no
	// filter.
	List(status models.ApprovalStatus, district string) ([]models.Decorator, error)

	// ListApprovedExcluding returns approved decorators whose email is not
	// in the given set, optionally narrowed to a district.
	ListApprovedExcluding(emails []string, district string) ([]models.Decorator, error)

	// SetDecision records an admin approval decision and resets the work
	// status to available.
	SetDecision(id string, status models.ApprovalStatus) error

	SetWorkStatusByEmail(email string, ws models.WorkStatus) error
	Delete(id string) error
}
