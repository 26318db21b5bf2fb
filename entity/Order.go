package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for the admin listing

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	// copied verbatim from the cart at checkout, never recomputed
	TotalAmount     float64 `json:"totalAmount"`
	DeliveryAddress string  `gorm:"not null" json:"deliveryAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
	Status          string  `json:"status"`
}
