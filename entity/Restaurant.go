package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Address     string `gorm:"not null" json:"address"`
	IsActive    bool   `json:"isActive"`

	// Deleting a restaurant does not cascade to its food items;
	// items keep a dangling reference on purpose.
	FoodItems []FoodItem `json:"-"`
}
