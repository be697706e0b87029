package catalog

import (
	"context"
	"fmt"

	catalogRepo "styledecor/database/repository/catalog"
	"styledecor/models"

	"github.com/google/uuid"
)

// homeLimit caps the home-page highlight strip.
const homeLimit = 8

// CatalogService manages the decoration service catalog.
type CatalogService interface {
	Create(ctx context.Context, svc *models.Service) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)

	// Home returns the most expensive services for the landing page.
	Home(ctx context.Context) ([]models.Service, error)

	Get(ctx context.Context, id string) (*models.Service, error)
}

// DefaultCatalogService is the production CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceRepository
}

// Create adds a service to the catalog.
func (s *DefaultCatalogService) Create(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	svc.ID = uuid.New().String()
	if err := s.Repo.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// List returns all catalog services.
func (s *DefaultCatalogService) List(ctx context.Context) ([]models.Service, error) {
	return s.Repo.List()
}

// Home returns the top services by cost.
func (s *DefaultCatalogService) Home(ctx context.Context) ([]models.Service, error) {
	return s.Repo.ListTopByCost(homeLimit)
}

// Get returns one service, or nil when it does not exist.
func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.GetByID(id)
}
