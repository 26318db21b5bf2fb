package services

import (
	"errors"
	"strings"

	"github.com/surajprakash3/Foodie-project/entity"
	"github.com/surajprakash3/Foodie-project/repository"
	"github.com/surajprakash3/Foodie-project/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FoodService struct {
	Repo     *repository.FoodRepository
	RestRepo *repository.RestaurantRepository
	Logger   *zap.Logger
}

func NewFoodService(repo *repository.FoodRepository, restRepo *repository.RestaurantRepository, logger *zap.Logger) *FoodService {
	return &FoodService{Repo: repo, RestRepo: restRepo, Logger: logger}
}

func (s *FoodService) ListAvailable(category string) ([]entity.FoodItem, error) {
	return s.Repo.FindAvailable(category)
}

func (s *FoodService) Categories() ([]string, error) {
	return s.Repo.DistinctCategories()
}

func (s *FoodService) ListByRestaurant(restaurantID uint) ([]entity.FoodItem, error) {
	return s.Repo.FindByRestaurant(restaurantID)
}

type CreateFoodIn struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Rating      *float64
	IsAvailable *bool
	Image       string
}

// Create adds a catalog item. restaurantID is nil for global items.
func (s *FoodService) Create(restaurantID *uint, in *CreateFoodIn) (*entity.FoodItem, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" {
		return nil, ErrNameRequired
	}
	if category == "" {
		return nil, ErrCategoryRequired
	}
	if in.Price < 0 {
		return nil, ErrNegativePrice
	}
	if restaurantID != nil {
		ok, err := s.RestRepo.Exists(*restaurantID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrRestaurantNotFound
		}
	}

	food := &entity.FoodItem{
		RestaurantID: restaurantID,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Image:        in.Image,
		Price:        in.Price,
		Category:     category,
		Rating:       4.0,
		IsAvailable:  true,
	}
	if in.Rating != nil {
		food.Rating = *in.Rating
	}
	if in.IsAvailable != nil {
		food.IsAvailable = *in.IsAvailable
	}

	if err := s.Repo.Create(food); err != nil {
		return nil, err
	}
	return food, nil
}

type UpdateFoodIn struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Rating      *float64
	IsAvailable *bool
	Image       *string // URL of a freshly stored upload
}

// Update patches only the provided fields; everything else keeps its value.
func (s *FoodService) Update(id uint, in *UpdateFoodIn) (*entity.FoodItem, error) {
	food, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		food.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		food.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, ErrNegativePrice
		}
		food.Price = *in.Price
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) != "" {
		food.Category = strings.TrimSpace(*in.Category)
	}
	if in.Rating != nil {
		food.Rating = *in.Rating
	}
	if in.IsAvailable != nil {
		food.IsAvailable = *in.IsAvailable
	}
	if in.Image != nil {
		s.dropImage(food.Image)
		food.Image = *in.Image
	}

	if err := s.Repo.Save(food); err != nil {
		return nil, err
	}
	return food, nil
}

// Delete removes the item; placed orders keep their own snapshots.
func (s *FoodService) Delete(id uint) error {
	food, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFoodNotFound
		}
		return err
	}
	s.dropImage(food.Image)
	return s.Repo.Delete(id)
}

func (s *FoodService) dropImage(imageURL string) {
	if imageURL == "" {
		return
	}
	if err := utils.RemoveImage(imageURL); err != nil {
		s.Logger.Warn("failed to remove image file",
			zap.String("image", imageURL),
			zap.Error(err))
	}
}
