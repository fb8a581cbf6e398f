package database

import (
	"go-food-ordering/models"
)

// CatalogStore holds the restaurant and menu catalog. The catalog is fixed at
// construction time, so reads need no locking.
type CatalogStore struct {
	restaurants []models.Restaurant
	menuItems   []models.MenuItem
}

func NewCatalogStore(restaurants []models.Restaurant, menuItems []models.MenuItem) *CatalogStore {
	return &CatalogStore{restaurants: restaurants, menuItems: menuItems}
}

func (s *CatalogStore) ListRestaurants() []models.Restaurant {
	out := make([]models.Restaurant, len(s.restaurants))
	copy(out, s.restaurants)
	return out
}

func (s *CatalogStore) GetRestaurantByID(id string) (models.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.Restaurant_id == id {
			return r, nil
		}
	}
	return models.Restaurant{}, ErrNotFound
}

func (s *CatalogStore) GetMenuItemsByRestaurantID(restaurantID string) []models.MenuItem {
	items := []models.MenuItem{}
	for _, item := range s.menuItems {
		if item.Restaurant_id == restaurantID {
			items = append(items, item)
		}
	}
	return items
}

func (s *CatalogStore) GetMenuItemByID(id string) (models.MenuItem, error) {
	for _, item := range s.menuItems {
		if item.Item_id == id {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}
