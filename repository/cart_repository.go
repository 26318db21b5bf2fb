package repository

import (
	"errors"

	"github.com/surajprakash3/Foodie-project/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart with food details expanded.
// A user without a cart gets an unpersisted empty cart, not an error.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.FoodItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCart returns the persisted cart only; gorm.ErrRecordNotFound if absent.
func (r *CartRepository) GetCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := r.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) FindItem(tx *gorm.DB, cartID, foodID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Where("cart_id = ? AND food_item_id = ?", cartID, foodID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) CreateItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, cartID, foodID uint) error {
	return tx.Where("cart_id = ? AND food_item_id = ?", cartID, foodID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) DeleteItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) UpdateTotal(tx *gorm.DB, cartID uint, total float64) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("total_amount", total).Error
}

// ItemsWithFood loads the cart's lines with their food rows expanded,
// inside the caller's transaction.
func (r *CartRepository) ItemsWithFood(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).
		Preload("FoodItem").
		Find(&items).Error
	return items, err
}
