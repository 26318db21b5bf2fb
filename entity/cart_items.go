package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	FoodItemID uint     `json:"foodId"`
	FoodItem   FoodItem `json:"food"`

	// always >= 1; a line that would drop to zero is deleted instead
	Quantity int `json:"quantity"`
}
