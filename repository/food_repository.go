package repository

import (
	"github.com/surajprakash3/Foodie-project/entity"
	"gorm.io/gorm"
)

type FoodRepository struct{ DB *gorm.DB }

func NewFoodRepository(db *gorm.DB) *FoodRepository { return &FoodRepository{DB: db} }

// GET /foods → available items, optional category filter
func (r *FoodRepository) FindAvailable(category string) ([]entity.FoodItem, error) {
	q := r.DB.Where("is_available = ?", true)
	if category != "" && category != "All" {
		q = q.Where("category = ?", category)
	}
	var foods []entity.FoodItem
	err := q.Order("category ASC, name ASC").Find(&foods).Error
	return foods, err
}

// GET /foods/categories → distinct categories among available items
func (r *FoodRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&entity.FoodItem{}).
		Where("is_available = ?", true).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// GET /foods/:restaurantId → all items for the restaurant, admin included
func (r *FoodRepository) FindByRestaurant(restaurantID uint) ([]entity.FoodItem, error) {
	var foods []entity.FoodItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("category ASC, name ASC").
		Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) FindByID(id uint) (*entity.FoodItem, error) {
	var food entity.FoodItem
	if err := r.DB.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Create(food *entity.FoodItem) error {
	return r.DB.Create(food).Error
}

func (r *FoodRepository) Save(food *entity.FoodItem) error {
	return r.DB.Save(food).Error
}

func (r *FoodRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.FoodItem{}, id).Error
}
