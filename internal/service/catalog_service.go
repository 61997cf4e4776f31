package service

import (
	"soulfood/internal/domain"
)

// CatalogService serves the customer-facing restaurant listing and the
// merchant's menu management.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListRestaurants returns active restaurants with their menus nested, the
// shape the storefront renders directly.
func (s *CatalogService) ListRestaurants() ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ListActiveRestaurants()
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		menu, err := s.repo.ListMenu(restaurants[i].ID)
		if err != nil {
			return nil, err
		}
		restaurants[i].Menu = menu
	}
	return restaurants, nil
}

func (s *CatalogService) GetRestaurant(id int) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		return nil, err
	}
	menu, err := s.repo.ListMenu(id)
	if err != nil {
		return nil, err
	}
	rest.Menu = menu
	return rest, nil
}

func (s *CatalogService) CreateRestaurant(rest *domain.Restaurant) error {
	return s.repo.CreateRestaurant(rest)
}

func (s *CatalogService) UpdateRestaurant(rest *domain.Restaurant) error {
	return s.repo.UpdateRestaurant(rest)
}

func (s *CatalogService) SetRestaurantActive(id int, active bool) error {
	return s.repo.SetRestaurantActive(id, active)
}

func (s *CatalogService) CreateMenuItem(item *domain.MenuItem) error {
	return s.repo.CreateMenuItem(item)
}

func (s *CatalogService) UpdateMenuItem(item *domain.MenuItem) error {
	return s.repo.UpdateMenuItem(item)
}

func (s *CatalogService) DeleteMenuItem(restaurantID, itemID int) (int64, error) {
	return s.repo.DeleteMenuItem(restaurantID, itemID)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
