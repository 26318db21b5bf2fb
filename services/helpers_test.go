package services

import (
	"fmt"
	"testing"

	"github.com/surajprakash3/Foodie-project/entity"
	"github.com/surajprakash3/Foodie-project/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.FoodItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewFoodRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db), zap.NewNop())
}

func newFoodService(db *gorm.DB) *FoodService {
	return NewFoodService(repository.NewFoodRepository(db), repository.NewRestaurantRepository(db), zap.NewNop())
}

func newRestaurantService(db *gorm.DB) *RestaurantService {
	return NewRestaurantService(repository.NewRestaurantRepository(db), zap.NewNop())
}

func seedFood(t *testing.T, db *gorm.DB, name string, price float64, category string) *entity.FoodItem {
	t.Helper()
	food := &entity.FoodItem{
		Name:        name,
		Price:       price,
		Category:    category,
		Rating:      4.0,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(food).Error)
	return food
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user := &entity.User{Name: "Test User", Email: email, Password: "x", Role: "user"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func intPtr(v int) *int { return &v }
