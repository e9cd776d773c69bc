package restaurant

import "github.com/shopspring/decimal"

// The fallback data set returned when the upstream provider is
// unavailable. Fixed and deterministic so degraded responses are stable;
// all five sit near the default San Francisco location.

func mockMenuItem(id, name, description string, price float64, category string, popular bool) MenuItem {
	return MenuItem{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       decimal.NewFromFloat(price),
		Category:    category,
		Popular:     popular,
	}
}

// MockRestaurants returns a fresh copy of the fallback restaurant set.
// Callers may mutate the result freely.
func MockRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:              "mock-1",
			Name:            "Pasta Paradise",
			Cuisine:         "Italian",
			Description:     "Authentic Italian cuisine with homemade pasta and wood-fired pizzas.",
			Address:         "123 Main St, San Francisco, CA",
			Phone:           "(415) 555-1234",
			Website:         "https://example.com/pasta-paradise",
			PriceRange:      2,
			Rating:          4.5,
			Location:        Location{Lat: 37.7749, Lng: -122.4194},
			Image:           "https://source.unsplash.com/random/800x600/?italian-food",
			DeliveryTime:    25,
			DeliveryFee:     decimal.NewFromFloat(3.99),
			AcceptingOrders: boolPtr(true),
			Menu: []MenuCategory{
				{
					ID:   "category-1",
					Name: "Pasta",
					Items: []MenuItem{
						mockMenuItem("item-1-1", "Spaghetti Carbonara", "Classic pasta with eggs, cheese, pancetta and black pepper", 14.99, "Pasta", true),
						mockMenuItem("item-1-2", "Lasagna", "Layered pasta with meat and cheese", 15.99, "Pasta", false),
					},
				},
				{
					ID:   "category-2",
					Name: "Pizza",
					Items: []MenuItem{
						mockMenuItem("item-2-1", "Margherita Pizza", "Traditional pizza with tomato sauce, mozzarella, and basil", 12.99, "Pizza", true),
					},
				},
				{
					ID:   "category-3",
					Name: "Desserts",
					Items: []MenuItem{
						mockMenuItem("item-3-1", "Tiramisu", "Classic Italian dessert with coffee-soaked ladyfingers and mascarpone", 7.99, "Desserts", true),
					},
				},
			},
		},
		{
			ID:              "mock-2",
			Name:            "Sushi Dreams",
			Cuisine:         "Japanese",
			Description:     "Fresh sushi and sashimi prepared by master chefs.",
			Address:         "456 Market St, San Francisco, CA",
			Phone:           "(415) 555-5678",
			Website:         "https://example.com/sushi-dreams",
			PriceRange:      3,
			Rating:          4.8,
			Location:        Location{Lat: 37.7775, Lng: -122.4164},
			Image:           "https://source.unsplash.com/random/800x600/?sushi",
			DeliveryTime:    35,
			DeliveryFee:     decimal.NewFromFloat(4.99),
			AcceptingOrders: boolPtr(true),
			Menu: []MenuCategory{
				{
					ID:   "category-1",
					Name: "Sushi",
					Items: []MenuItem{
						mockMenuItem("item-1-1", "California Roll", "Crab, avocado and cucumber roll", 8.99, "Sushi", true),
						mockMenuItem("item-1-2", "Salmon Nigiri", "Fresh salmon over seasoned rice", 6.99, "Sushi", true),
						mockMenuItem("item-1-3", "Dragon Roll", "Eel and cucumber roll topped with avocado", 12.99, "Sushi", true),
					},
				},
				{
					ID:   "category-2",
					Name: "Soups",
					Items: []MenuItem{
						mockMenuItem("item-2-1", "Miso Soup", "Traditional Japanese soup with tofu and seaweed", 3.99, "Soups", false),
					},
				},
			},
		},
		{
			ID:              "mock-3",
			Name:            "Taco Town",
			Cuisine:         "Mexican",
			Description:     "Authentic Mexican street food and margaritas.",
			Address:         "789 Mission St, San Francisco, CA",
			Phone:           "(415) 555-9012",
			Website:         "https://example.com/taco-town",
			PriceRange:      1,
			Rating:          4.2,
			Location:        Location{Lat: 37.7724, Lng: -122.4154},
			Image:           "https://source.unsplash.com/random/800x600/?tacos",
			DeliveryTime:    20,
			DeliveryFee:     decimal.NewFromFloat(2.49),
			AcceptingOrders: boolPtr(true),
			Menu: []MenuCategory{
				{
					ID:   "category-1",
					Name: "Tacos",
					Items: []MenuItem{
						mockMenuItem("item-1-1", "Carne Asada Tacos", "Marinated steak tacos with salsa", 12.99, "Tacos", true),
						mockMenuItem("item-1-2", "Fish Tacos", "Crispy fish with cabbage slaw and lime crema", 11.99, "Tacos", false),
					},
				},
				{
					ID:   "category-2",
					Name: "Burritos",
					Items: []MenuItem{
						mockMenuItem("item-2-1", "Vegetarian Burrito", "Beans, rice, and vegetables", 10.99, "Burritos", false),
					},
				},
			},
		},
		{
			ID:              "mock-4",
			Name:            "Golden Dragon",
			Cuisine:         "Chinese",
			Description:     "Traditional Chinese restaurant specializing in dim sum and Cantonese cuisine.",
			Address:         "101 Market St, San Francisco, CA",
			Phone:           "(415) 555-3456",
			Website:         "https://example.com/golden-dragon",
			PriceRange:      2,
			Rating:          4.0,
			Location:        Location{Lat: 37.7730, Lng: -122.4190},
			Image:           "https://source.unsplash.com/random/800x600/?chinese-food",
			DeliveryTime:    30,
			DeliveryFee:     decimal.NewFromFloat(3.49),
			AcceptingOrders: boolPtr(true),
		},
		{
			ID:              "mock-5",
			Name:            "Burger Joint",
			Cuisine:         "American",
			Description:     "Fast-casual burgers, sandwiches, and shakes.",
			Address:         "222 Mission St, San Francisco, CA",
			Phone:           "(415) 555-7890",
			Website:         "https://example.com/burger-joint",
			PriceRange:      2,
			Rating:          4.3,
			Location:        Location{Lat: 37.7875, Lng: -122.4324},
			Image:           "https://source.unsplash.com/random/800x600/?burger",
			DeliveryTime:    15,
			DeliveryFee:     decimal.NewFromFloat(1.99),
			AcceptingOrders: boolPtr(true),
		},
	}
}
