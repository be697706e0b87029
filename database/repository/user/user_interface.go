package userRepo

import "styledecor/models"

// UserRepository defines persistence operations for platform users.
type UserRepository interface {
	Create(u *models.User) error

	// GetByEmail returns (nil, nil) when no user exists with that email.
	GetByEmail(email string) (*models.User, error)

	// GetByID returns (nil, nil) when no user exists with that ID.
	GetByID(id string) (*models.User, error)

	// Search matches displayName or email case-insensitively, newest-first,
	// capped at limit.
	Search(q string, limit int64) ([]models.User, error)

	SetRole(id string, role models.Role) error

	// SetRoleByEmail is used by decorator approval, which only knows the
	// owning user's email.
	SetRoleByEmail(email string, role models.Role) error
}
