package database

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"go-food-ordering/models"
)

// Demo dataset for running without any backing services. The ids and prices
// here are referenced by the seeded orders below, so keep them in sync.

func SeedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			Restaurant_id: "r1",
			Name:          "Burger Palace",
			ImageUrl:      "https://images.unsplash.com/photo-1571091718767-18b5b1457add?auto=format&fit=crop&w=500&q=60",
			CoverImageUrl: "https://images.unsplash.com/photo-1550547660-d9450f859349?auto=format&fit=crop&w=1400&q=60",
			Cuisine:       "American",
			Rating:        4.5,
			Delivery_Time: "25-35 min",
			Delivery_Fee:  "$2.99",
			Address:       "123 Main St, Anytown, USA",
			Phone:         "(555) 123-4567",
			Open_Hours:    "10:00 AM - 10:00 PM",
		},
		{
			Restaurant_id: "r2",
			Name:          "Pizza Heaven",
			ImageUrl:      "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=500&q=60",
			CoverImageUrl: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?auto=format&fit=crop&w=1400&q=60",
			Cuisine:       "Italian",
			Rating:        4.7,
			Delivery_Time: "30-45 min",
			Delivery_Fee:  "$1.99",
			Address:       "456 Elm St, Anytown, USA",
			Phone:         "(555) 987-6543",
			Open_Hours:    "11:00 AM - 11:00 PM",
		},
		{
			Restaurant_id: "r3",
			Name:          "Sushi Express",
			ImageUrl:      "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?auto=format&fit=crop&w=500&q=60",
			CoverImageUrl: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=1400&q=60",
			Cuisine:       "Japanese",
			Rating:        4.8,
			Delivery_Time: "40-55 min",
			Delivery_Fee:  "$3.99",
			Address:       "789 Oak Ave, Anytown, USA",
			Phone:         "(555) 234-5678",
			Open_Hours:    "12:00 PM - 9:30 PM",
		},
		{
			Restaurant_id: "r4",
			Name:          "Taco Town",
			ImageUrl:      "https://images.unsplash.com/photo-1551504734-5ee1c4a1479b?auto=format&fit=crop&w=500&q=60",
			CoverImageUrl: "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?auto=format&fit=crop&w=1400&q=60",
			Cuisine:       "Mexican",
			Rating:        4.3,
			Delivery_Time: "20-30 min",
			Delivery_Fee:  "$2.49",
			Address:       "101 Pine Rd, Anytown, USA",
			Phone:         "(555) 345-6789",
			Open_Hours:    "11:00 AM - 10:00 PM",
		},
		{
			Restaurant_id: "r5",
			Name:          "Curry House",
			ImageUrl:      "https://images.unsplash.com/photo-1505253758473-96b7015fcd40?auto=format&fit=crop&w=500&q=60",
			CoverImageUrl: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?auto=format&fit=crop&w=1400&q=60",
			Cuisine:       "Indian",
			Rating:        4.6,
			Delivery_Time: "35-50 min",
			Delivery_Fee:  "$2.99",
			Address:       "202 Cedar Blvd, Anytown, USA",
			Phone:         "(555) 456-7890",
			Open_Hours:    "12:00 PM - 10:30 PM",
		},
	}
}

func SeedMenuItems() []models.MenuItem {
	return []models.MenuItem{
		// Burger Palace
		{Item_id: "bp1", Name: "Classic Cheeseburger", Description: "Juicy beef patty with cheddar cheese, lettuce, tomato, and house sauce on a brioche bun", Price: 8.99, ImageUrl: "https://images.unsplash.com/photo-1572802419224-296b0aeee0d9?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r1"},
		{Item_id: "bp2", Name: "Bacon Deluxe Burger", Description: "Angus beef patty with crispy bacon, swiss cheese, caramelized onions, and BBQ sauce", Price: 10.99, ImageUrl: "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r1"},
		{Item_id: "bp3", Name: "Truffle Fries", Description: "Crispy fries tossed in truffle oil and parmesan cheese", Price: 4.99, ImageUrl: "https://images.unsplash.com/photo-1630384060421-cb20d0e70989?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r1"},
		{Item_id: "bp4", Name: "Chocolate Milkshake", Description: "Creamy chocolate milkshake topped with whipped cream", Price: 5.49, ImageUrl: "https://images.unsplash.com/photo-1579954115567-dff2eeb6fdeb?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r1"},
		// Pizza Heaven
		{Item_id: "ph1", Name: "Margherita Pizza", Description: "Classic pizza with tomato sauce, mozzarella, fresh basil, and olive oil", Price: 12.99, ImageUrl: "https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r2"},
		{Item_id: "ph2", Name: "Pepperoni Pizza", Description: "Tomato sauce, mozzarella, and pepperoni slices", Price: 14.99, ImageUrl: "https://images.unsplash.com/photo-1534308983496-4fabb1a015ee?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r2"},
		{Item_id: "ph3", Name: "Garlic Bread", Description: "Warm bread with garlic butter and herbs", Price: 3.99, ImageUrl: "https://images.unsplash.com/photo-1619531038896-a4b83372ca0e?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r2"},
		{Item_id: "ph4", Name: "Caesar Salad", Description: "Romaine lettuce, croutons, parmesan cheese, and Caesar dressing", Price: 7.99, ImageUrl: "https://images.unsplash.com/photo-1551248429-40975aa4de74?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r2"},
		// Sushi Express
		{Item_id: "se1", Name: "California Roll", Description: "Crab, avocado, cucumber, and tobiko", Price: 8.99, ImageUrl: "https://images.unsplash.com/photo-1553621042-f6e147245754?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r3"},
		{Item_id: "se2", Name: "Salmon Nigiri", Description: "Fresh salmon slices on seasoned rice (2 pieces)", Price: 6.99, ImageUrl: "https://images.unsplash.com/photo-1534482421-64566f976cfa?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r3"},
		{Item_id: "se3", Name: "Spicy Tuna Roll", Description: "Spicy tuna, cucumber, and spring onion", Price: 9.99, ImageUrl: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r3"},
		{Item_id: "se4", Name: "Miso Soup", Description: "Traditional Japanese soup with tofu, seaweed, and green onion", Price: 3.49, ImageUrl: "https://images.unsplash.com/photo-1607330289024-1535c6b4e1c1?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r3"},
		// Taco Town
		{Item_id: "tt1", Name: "Street Tacos", Description: "Three corn tortillas with seasoned beef, onion, cilantro, and lime", Price: 7.99, ImageUrl: "https://images.unsplash.com/photo-1613514785940-daed07799d9b?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r4"},
		{Item_id: "tt2", Name: "Chicken Quesadilla", Description: "Large flour tortilla filled with grilled chicken, cheese, and peppers", Price: 9.99, ImageUrl: "https://images.unsplash.com/photo-1618040996337-56904b7850b4?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r4"},
		{Item_id: "tt3", Name: "Nachos Supreme", Description: "Tortilla chips topped with beans, cheese, jalapenos, sour cream, and guacamole", Price: 8.49, ImageUrl: "https://images.unsplash.com/photo-1586511925558-a4c6376fe65f?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r4"},
		{Item_id: "tt4", Name: "Churros", Description: "Fried dough pastry with cinnamon sugar and chocolate dipping sauce", Price: 4.99, ImageUrl: "https://images.unsplash.com/photo-1624374984106-82239d52c8d0?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r4"},
		// Curry House
		{Item_id: "ch1", Name: "Butter Chicken", Description: "Tender chicken pieces in a creamy tomato sauce with aromatic spices", Price: 14.99, ImageUrl: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r5"},
		{Item_id: "ch2", Name: "Vegetable Biryani", Description: "Fragrant basmati rice cooked with mixed vegetables and aromatic spices", Price: 11.99, ImageUrl: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r5"},
		{Item_id: "ch3", Name: "Garlic Naan", Description: "Soft Indian bread with garlic and butter", Price: 3.49, ImageUrl: "https://images.unsplash.com/photo-1600343993668-d46116cf6b75?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r5"},
		{Item_id: "ch4", Name: "Mango Lassi", Description: "Refreshing yogurt drink with mango puree and cardamom", Price: 4.49, ImageUrl: "https://images.unsplash.com/photo-1605270012917-bf357a1fdf2b?auto=format&fit=crop&w=500&q=60", Restaurant_id: "r5"},
	}
}

const seedUserID = "123456"

// SeedOrders loads two demo orders for the seed user: one fully delivered,
// one caught mid-lifecycle at preparing.
func SeedOrders(s *OrderStore) {
	s.insert(models.Order{
		Order_id:        "o1",
		User_id:         seedUserID,
		Restaurant_id:   "r1",
		Restaurant_name: "Burger Palace",
		Items: []models.OrderItem{
			{ID: "bp1", Name: "Classic Cheeseburger", Price: 8.99, Quantity: 2},
			{ID: "bp3", Name: "Truffle Fries", Price: 4.99, Quantity: 1},
		},
		Total_price:      22.97,
		Delivery_address: "123 Main St, Apt 4B, Anytown, USA",
		Created_at:       seedTime("2023-08-10T14:30:00Z"),
		Status_History: []models.StatusUpdate{
			{Status: models.StatusPending, Timestamp: seedTime("2023-08-10T14:30:00Z")},
			{Status: models.StatusConfirmed, Timestamp: seedTime("2023-08-10T14:32:00Z")},
			{Status: models.StatusPreparing, Timestamp: seedTime("2023-08-10T14:40:00Z")},
			{Status: models.StatusOutForDelivery, Timestamp: seedTime("2023-08-10T15:15:00Z")},
			{Status: models.StatusDelivered, Timestamp: seedTime("2023-08-10T15:45:00Z")},
		},
		Current_Status: models.StatusUpdate{Status: models.StatusDelivered, Timestamp: seedTime("2023-08-10T15:45:00Z")},
	})
	s.insert(models.Order{
		Order_id:        "o2",
		User_id:         seedUserID,
		Restaurant_id:   "r3",
		Restaurant_name: "Sushi Express",
		Items: []models.OrderItem{
			{ID: "se1", Name: "California Roll", Price: 8.99, Quantity: 1},
			{ID: "se2", Name: "Salmon Nigiri", Price: 6.99, Quantity: 2},
			{ID: "se4", Name: "Miso Soup", Price: 3.49, Quantity: 1},
		},
		Total_price:      26.46,
		Delivery_address: "123 Main St, Apt 4B, Anytown, USA",
		Created_at:       seedTime("2023-08-15T19:20:00Z"),
		Status_History: []models.StatusUpdate{
			{Status: models.StatusPending, Timestamp: seedTime("2023-08-15T19:20:00Z")},
			{Status: models.StatusConfirmed, Timestamp: seedTime("2023-08-15T19:25:00Z")},
			{Status: models.StatusPreparing, Timestamp: seedTime("2023-08-15T19:40:00Z")},
		},
		Current_Status: models.StatusUpdate{Status: models.StatusPreparing, Timestamp: seedTime("2023-08-15T19:40:00Z")},
	})
}

// SeedUsers loads a demo customer account (demo@example.com / password123).
func SeedUsers(s *UserStore) {
	name := "demo"
	email := "demo@example.com"
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	password := string(hashed)
	now := time.Now()
	_ = s.CreateUser(models.User{
		User_id:    seedUserID,
		Name:       &name,
		Email:      &email,
		Password:   &password,
		Role:       "customer",
		Created_at: now,
		Updated_at: now,
	})
}

func seedTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}
