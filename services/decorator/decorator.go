package decorator

import (
	"context"
	"fmt"

	bookingRepo "styledecor/database/repository/booking"
	decoratorRepo "styledecor/database/repository/decorator"
	userRepo "styledecor/database/repository/user"
	"styledecor/models"
	"styledecor/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DecoratorService manages decorator registration, the admin approval gate,
// and availability queries.
type DecoratorService interface {
	Register(ctx context.Context, d *models.Decorator) (*models.Decorator, error)
	List(ctx context.Context, status models.ApprovalStatus, district string) ([]models.Decorator, error)

	// AvailableOn returns approved decorators without a non-completed
	// booking on the given date. Availability is derived from bookings at
	// query time, not from the cached workStatus flag.
	AvailableOn(ctx context.Context, date, district string) ([]models.Decorator, error)

	// Decide records an admin approval decision. Approval promotes the
	// owning user's role to decorator.
	Decide(ctx context.Context, id string, status models.ApprovalStatus) error

	Delete(ctx context.Context, id string) error
}

// DefaultDecoratorService is the production DecoratorService.
type DefaultDecoratorService struct {
	Repo     decoratorRepo.DecoratorRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Cache    *redis.Client
	Logger   *zap.Logger
}

// Register creates a decorator in the pending approval state.
func (s *DefaultDecoratorService) Register(ctx context.Context, d *models.Decorator) (*models.Decorator, error) {
	if d.Email == "" || d.Name == "" {
		return nil, fmt.Errorf("decorator email and name are required")
	}

	d.ID = uuid.New().String()
	d.Status = models.ApprovalPending

	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// List filters decorators by approval status and district.
func (s *DefaultDecoratorService) List(ctx context.Context, status models.ApprovalStatus, district string) ([]models.Decorator, error) {
	return s.Repo.List(status, district)
}

// AvailableOn excludes decorators already booked on the date. The frontend
// sends the literal string "undefined" when no district is chosen.
func (s *DefaultDecoratorService) AvailableOn(ctx context.Context, date, district string) ([]models.Decorator, error) {
	if date == "" {
		return nil, fmt.Errorf("date is required")
	}
	if district == "undefined" {
		district = ""
	}

	booked, err := s.Bookings.DecoratorEmailsOnDate(date)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListApprovedExcluding(booked, district)
}

// Decide records approval or rejection. Approval promotes the owning user
// to the decorator role and drops any cached role.
func (s *DefaultDecoratorService) Decide(ctx context.Context, id string, status models.ApprovalStatus) error {
	if status != models.ApprovalApproved && status != models.ApprovalRejected {
		return fmt.Errorf("unknown approval status %q", status)
	}

	d, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("decorator with id %s not found", id)
	}

	if err := s.Repo.SetDecision(id, status); err != nil {
		return err
	}

	if status == models.ApprovalApproved {
		if err := s.Users.SetRoleByEmail(d.Email, models.RoleDecorator); err != nil {
			return err
		}
		if s.Cache != nil {
			if err := s.Cache.Del(ctx, utils.RoleCacheKey(d.Email)).Err(); err != nil {
				s.Logger.Warn("failed to invalidate role cache",
					zap.String("email", d.Email), zap.Error(err))
			}
		}
	}
	return nil
}

// Delete removes a decorator.
func (s *DefaultDecoratorService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(id)
}
