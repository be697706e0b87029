package catalogRepo

import "styledecor/models"

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	Create(s *models.Service) error
	GetByID(id string) (*models.Service, error)
	List() ([]models.Service, error)

	// ListTopByCost returns the most expensive services first, capped at
	// limit; backs the home-page highlight strip.
	ListTopByCost(limit int64) ([]models.Service, error)
}
