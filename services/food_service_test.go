package services

import (
	"testing"

	"github.com/surajprakash3/Foodie-project/entity"

	"github.com/stretchr/testify/require"
)

func TestListAvailableHidesUnavailable(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)
	seedFood(t, db, "Burger", 100, "Fast Food")
	hidden := seedFood(t, db, "Secret Dish", 200, "Fast Food")
	require.NoError(t, db.Model(hidden).Update("is_available", false).Error)

	foods, err := svc.ListAvailable("")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	require.Equal(t, "Burger", foods[0].Name)
}

func TestListAvailableFiltersByCategory(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)
	seedFood(t, db, "Burger", 100, "Fast Food")
	seedFood(t, db, "Tea", 20, "Drinks")

	foods, err := svc.ListAvailable("Drinks")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	require.Equal(t, "Tea", foods[0].Name)

	// "All" means no filter
	foods, err = svc.ListAvailable("All")
	require.NoError(t, err)
	require.Len(t, foods, 2)
}

func TestListAvailableSortedByCategoryThenName(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)
	seedFood(t, db, "Pizza", 120, "Mains")
	seedFood(t, db, "Burger", 100, "Mains")
	seedFood(t, db, "Tea", 20, "Drinks")

	foods, err := svc.ListAvailable("")
	require.NoError(t, err)
	require.Len(t, foods, 3)
	require.Equal(t, "Tea", foods[0].Name)
	require.Equal(t, "Burger", foods[1].Name)
	require.Equal(t, "Pizza", foods[2].Name)
}

func TestCategoriesDistinctSortedAvailableOnly(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)
	seedFood(t, db, "Burger", 100, "Mains")
	seedFood(t, db, "Pizza", 120, "Mains")
	seedFood(t, db, "Tea", 20, "Drinks")
	hidden := seedFood(t, db, "Mystery", 5, "Specials")
	require.NoError(t, db.Model(hidden).Update("is_available", false).Error)

	categories, err := svc.Categories()
	require.NoError(t, err)
	require.Equal(t, []string{"Drinks", "Mains"}, categories)
}

func TestCreateDefaults(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)

	food, err := svc.Create(nil, &CreateFoodIn{Name: "Burger", Price: 100, Category: "Mains"})
	require.NoError(t, err)
	require.Nil(t, food.RestaurantID)
	require.Equal(t, 4.0, food.Rating)
	require.True(t, food.IsAvailable)
}

func TestCreateValidation(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)

	_, err := svc.Create(nil, &CreateFoodIn{Name: " ", Price: 100, Category: "Mains"})
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(nil, &CreateFoodIn{Name: "Burger", Price: 100, Category: ""})
	require.ErrorIs(t, err, ErrCategoryRequired)

	_, err = svc.Create(nil, &CreateFoodIn{Name: "Burger", Price: -1, Category: "Mains"})
	require.ErrorIs(t, err, ErrNegativePrice)
}

func TestCreateForUnknownRestaurant(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)

	restID := uint(999)
	_, err := svc.Create(&restID, &CreateFoodIn{Name: "Burger", Price: 100, Category: "Mains"})
	require.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestListByRestaurantIncludesUnavailable(t *testing.T) {
	db := setupDB(t)
	foodSvc := newFoodService(db)
	restSvc := newRestaurantService(db)

	rest, err := restSvc.Create(&CreateRestaurantIn{Name: "Diner", Address: "Main St"})
	require.NoError(t, err)

	available := false
	_, err = foodSvc.Create(&rest.ID, &CreateFoodIn{Name: "Off Menu", Price: 10, Category: "Mains", IsAvailable: &available})
	require.NoError(t, err)
	_, err = foodSvc.Create(&rest.ID, &CreateFoodIn{Name: "Burger", Price: 100, Category: "Mains"})
	require.NoError(t, err)
	seedFood(t, db, "Global Item", 30, "Sides")

	foods, err := foodSvc.ListByRestaurant(rest.ID)
	require.NoError(t, err)
	require.Len(t, foods, 2)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)
	food := seedFood(t, db, "Burger", 100, "Mains")

	price := 120.0
	updated, err := svc.Update(food.ID, &UpdateFoodIn{Price: &price})
	require.NoError(t, err)

	require.Equal(t, 120.0, updated.Price)
	require.Equal(t, "Burger", updated.Name)
	require.Equal(t, "Mains", updated.Category)
	require.Equal(t, 4.0, updated.Rating)
	require.True(t, updated.IsAvailable)
}

func TestUpdateUnknownFood(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)

	name := "Burger"
	_, err := svc.Update(999, &UpdateFoodIn{Name: &name})
	require.ErrorIs(t, err, ErrFoodNotFound)
}

func TestDeleteFood(t *testing.T) {
	db := setupDB(t)
	svc := newFoodService(db)
	food := seedFood(t, db, "Burger", 100, "Mains")

	require.NoError(t, svc.Delete(food.ID))
	require.ErrorIs(t, svc.Delete(food.ID), ErrFoodNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.FoodItem{}).Count(&count).Error)
	require.Zero(t, count)
}
