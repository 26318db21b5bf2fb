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

type RestaurantService struct {
	Repo   *repository.RestaurantRepository
	Logger *zap.Logger
}

func NewRestaurantService(repo *repository.RestaurantRepository, logger *zap.Logger) *RestaurantService {
	return &RestaurantService{Repo: repo, Logger: logger}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return rest, nil
}

type CreateRestaurantIn struct {
	Name        string
	Description string
	Address     string
	IsActive    *bool
	Image       string
}

func (s *RestaurantService) Create(in *CreateRestaurantIn) (*entity.Restaurant, error) {
	name := strings.TrimSpace(in.Name)
	address := strings.TrimSpace(in.Address)
	if name == "" {
		return nil, ErrNameRequired
	}
	if address == "" {
		return nil, ErrAddressMissing
	}

	rest := &entity.Restaurant{
		Name:        name,
		Image:       in.Image,
		Description: strings.TrimSpace(in.Description),
		Address:     address,
		IsActive:    true,
	}
	if in.IsActive != nil {
		rest.IsActive = *in.IsActive
	}

	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

type UpdateRestaurantIn struct {
	Name        *string
	Description *string
	Address     *string
	IsActive    *bool
	Image       *string
}

func (s *RestaurantService) Update(id uint, in *UpdateRestaurantIn) (*entity.Restaurant, error) {
	rest, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		rest.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		rest.Description = *in.Description
	}
	if in.Address != nil && strings.TrimSpace(*in.Address) != "" {
		rest.Address = strings.TrimSpace(*in.Address)
	}
	if in.IsActive != nil {
		rest.IsActive = *in.IsActive
	}
	if in.Image != nil {
		s.dropImage(rest.Image)
		rest.Image = *in.Image
	}

	if err := s.Repo.Save(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// Delete removes the restaurant only; its food items are left in place.
func (s *RestaurantService) Delete(id uint) error {
	rest, err := s.Get(id)
	if err != nil {
		return err
	}
	s.dropImage(rest.Image)
	return s.Repo.Delete(id)
}

func (s *RestaurantService) dropImage(imageURL string) {
	if imageURL == "" {
		return
	}
	if err := utils.RemoveImage(imageURL); err != nil {
		s.Logger.Warn("failed to remove image file",
			zap.String("image", imageURL),
			zap.Error(err))
	}
}
