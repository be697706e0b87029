package user

import (
	"context"
	"fmt"

	userRepo "styledecor/database/repository/user"
	"styledecor/models"
	"styledecor/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// searchLimit caps the user search result size.
const searchLimit = 5

// UserService manages platform user accounts and roles.
type UserService interface {
	// Register creates the user if the email is new; registering an
	// existing email is a no-op. Reports whether a user was created.
	Register(ctx context.Context, u *models.User) (bool, error)

	Search(ctx context.Context, q string) ([]models.User, error)

	// RoleOf returns the user's role, defaulting to "user" for unknown
	// emails.
	RoleOf(ctx context.Context, email string) (models.Role, error)

	ChangeRole(ctx context.Context, id string, role models.Role) error
}

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

// Register creates the user with the default role unless the email already
// exists.
func (s *DefaultUserService) Register(ctx context.Context, u *models.User) (bool, error) {
	if u.Email == "" {
		return false, fmt.Errorf("email is required")
	}

	existing, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	u.ID = uuid.New().String()
	u.Role = models.RoleUser
	if err := s.Repo.Create(u); err != nil {
		return false, err
	}
	return true, nil
}

// Search returns users matching the query, newest-first, capped.
func (s *DefaultUserService) Search(ctx context.Context, q string) ([]models.User, error) {
	return s.Repo.Search(q, searchLimit)
}

// RoleOf returns the user's role, defaulting to "user".
func (s *DefaultUserService) RoleOf(ctx context.Context, email string) (models.Role, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil || u.Role == "" {
		return models.RoleUser, nil
	}
	return u.Role, nil
}

// ChangeRole updates a user's role and drops the cached role so the admin
// gate picks the change up immediately.
func (s *DefaultUserService) ChangeRole(ctx context.Context, id string, role models.Role) error {
	switch role {
	case models.RoleUser, models.RoleDecorator, models.RoleAdmin:
	default:
		return fmt.Errorf("unknown role %q", role)
	}

	u, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user with id %s not found", id)
	}

	if err := s.Repo.SetRole(id, role); err != nil {
		return err
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, utils.RoleCacheKey(u.Email)).Err(); err != nil {
			s.Logger.Warn("failed to invalidate role cache",
				zap.String("email", u.Email), zap.Error(err))
		}
	}
	return nil
}
