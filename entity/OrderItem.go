package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a value snapshot taken at checkout. Name, price and image are
// captured as they were at order time and stay stable when the catalog
// changes or the food item is deleted.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodItemID uint    `json:"foodId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image"`
}
