package models

type Restaurant struct {
	Restaurant_id string  `json:"restaurant_id"`
	Name          string  `json:"name" validate:"required"`
	ImageUrl      string  `json:"image_url"`
	CoverImageUrl string  `json:"cover_image_url"`
	Cuisine       string  `json:"cuisine"`
	Rating        float64 `json:"rating"`
	Delivery_Time string  `json:"delivery_time"`
	Delivery_Fee  string  `json:"delivery_fee"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Open_Hours    string  `json:"open_hours"`
}

type MenuItem struct {
	Item_id       string  `json:"item_id"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gte=0"`
	ImageUrl      string  `json:"image_url"`
	Restaurant_id string  `json:"restaurant_id"`
}
