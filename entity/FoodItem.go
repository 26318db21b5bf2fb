package entity

import (
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	// nil for global items that belong to no restaurant
	RestaurantID *uint       `json:"restaurantId"`
	Restaurant   *Restaurant `json:"-"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"not null;index" json:"category"`
	Rating      float64 `json:"rating"`
	IsAvailable bool    `json:"isAvailable"`
}
