package services

import (
	"context"

	"food-delivery-api/models"
	"food-delivery-api/storage"
)

// SeedService bootstraps the catalog with fixed sample data. Restaurants and
// menu items are seeded under independent emptiness checks, so a run that was
// cut short after restaurants completes the menu half on the next invocation.
type SeedService struct {
	restaurants storage.RestaurantStore
	menuItems   storage.MenuItemStore
}

func NewSeedService(restaurants storage.RestaurantStore, menuItems storage.MenuItemStore) *SeedService {
	return &SeedService{
		restaurants: restaurants,
		menuItems:   menuItems,
	}
}

// SeedResult reports how many documents each half of the seed inserted.
type SeedResult struct {
	Restaurants int `json:"restaurants"`
	MenuItems   int `json:"menuitem"`
}

func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	count, err := s.restaurants.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		for _, restaurant := range sampleRestaurants() {
			if _, err := s.restaurants.Insert(ctx, &restaurant); err != nil {
				return nil, err
			}
			result.Restaurants++
		}
	}

	menuCount, err := s.menuItems.Count(ctx)
	if err != nil {
		return nil, err
	}
	if menuCount == 0 {
		// Link against whatever restaurants exist now, not necessarily the
		// ones inserted above.
		current, err := s.restaurants.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(current) > 0 {
			for _, item := range sampleMenuItems(current) {
				if _, err := s.menuItems.Insert(ctx, &item); err != nil {
					return nil, err
				}
				result.MenuItems++
			}
		}
	}

	return result, nil
}

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			Name:            "Pasta Palace",
			Cuisine:         "Italian",
			Description:     "Homemade pasta and sauces",
			Image:           "https://images.unsplash.com/photo-1521389508051-d7ffb5dc8bbf",
			Rating:          4.6,
			DeliveryTimeMin: 30,
		},
		{
			Name:            "Sushi Express",
			Cuisine:         "Japanese",
			Description:     "Fresh nigiri and rolls",
			Image:           "https://images.unsplash.com/photo-1544025162-d76694265947",
			Rating:          4.8,
			DeliveryTimeMin: 25,
		},
		{
			Name:            "Spice Route",
			Cuisine:         "Indian",
			Description:     "Curries, biryani and more",
			Image:           "https://images.unsplash.com/photo-1604908554027-0f2f74a9cfc7",
			Rating:          4.5,
			DeliveryTimeMin: 35,
		},
	}
}

// sampleMenuItems distributes the fixed items across the first three
// restaurants, falling back to the first when fewer exist.
func sampleMenuItems(restaurants []models.Restaurant) []models.MenuItem {
	first := restaurants[0].ID.Hex()
	second := first
	if len(restaurants) > 1 {
		second = restaurants[1].ID.Hex()
	}
	third := first
	if len(restaurants) > 2 {
		third = restaurants[2].ID.Hex()
	}

	return []models.MenuItem{
		{
			RestaurantId: first,
			Name:         "Spaghetti Carbonara",
			Description:  "Creamy sauce with pancetta",
			Price:        14.99,
			Image:        "https://images.unsplash.com/photo-1603133872878-684f208fb86a",
			Category:     "Mains",
		},
		{
			RestaurantId: first,
			Name:         "Margherita Pizza",
			Description:  "Classic tomatoes and mozzarella",
			Price:        12.5,
			Image:        "https://images.unsplash.com/photo-1548365328-9f547fb09530",
			Category:     "Mains",
		},
		{
			RestaurantId: second,
			Name:         "Salmon Nigiri (6)",
			Description:  "Fresh cut salmon over rice",
			Price:        11.99,
			Image:        "https://images.unsplash.com/photo-1562158070-1a4f3f8f7c21",
			Category:     "Sushi",
		},
		{
			RestaurantId: third,
			Name:         "Chicken Tikka Masala",
			Description:  "Charred chicken in spicy sauce",
			Price:        13.75,
			Image:        "https://images.unsplash.com/photo-1604908177031-842fa9a316d2",
			Category:     "Mains",
		},
	}
}
