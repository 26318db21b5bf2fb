package services

import (
	"errors"

	"github.com/surajprakash3/Foodie-project/entity"
	"github.com/surajprakash3/Foodie-project/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	FoodRepo *repository.FoodRepository // price lookups for total recomputation
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, FoodRepo: fr}
}

type AddToCartIn struct {
	FoodID uint `json:"foodId" binding:"required"`
	// nil means "increment by one if present, insert with one if not";
	// an explicit value replaces the stored quantity
	Quantity *int `json:"quantity"`
}

// Get returns the cart with food details expanded. A user without a cart
// gets an empty, unpersisted cart.
func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	return s.CartRepo.GetCartWithItems(userID)
}

func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.Cart, error) {
	if _, err := s.FoodRepo.FindByID(in.FoodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		item, err := s.CartRepo.FindItem(tx, cart.ID, in.FoodID)
		switch {
		case err == nil:
			newQty := item.Quantity + 1
			if in.Quantity != nil {
				newQty = *in.Quantity
			}
			if newQty <= 0 {
				if err := s.CartRepo.DeleteItem(tx, cart.ID, in.FoodID); err != nil {
					return err
				}
			} else {
				item.Quantity = newQty
				if err := s.CartRepo.SaveItem(tx, item); err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			qty := 1
			if in.Quantity != nil {
				qty = *in.Quantity
			}
			// never store a non-positive line
			if qty > 0 {
				line := &entity.CartItem{CartID: cart.ID, FoodItemID: in.FoodID, Quantity: qty}
				if err := s.CartRepo.CreateItem(tx, line); err != nil {
					return err
				}
			}
		default:
			return err
		}

		return s.recomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetCartWithItems(userID)
}

// Remove deletes the matching line if present; removing an absent food is a
// no-op. Only a missing cart is an error.
func (s *CartService) Remove(userID, foodID uint) (*entity.Cart, error) {
	cart, err := s.CartRepo.GetCart(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.DeleteItem(tx, cart.ID, foodID); err != nil {
			return err
		}
		return s.recomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetCartWithItems(userID)
}

// Clear empties the cart but keeps the document. No cart, nothing to do.
func (s *CartService) Clear(userID uint) error {
	cart, err := s.CartRepo.GetCart(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.DeleteItems(tx, cart.ID); err != nil {
			return err
		}
		return s.CartRepo.UpdateTotal(tx, cart.ID, 0)
	})
}

// recomputeTotal re-reads the current catalog price of every line. Lines
// whose food no longer resolves stay in the cart but contribute nothing.
func (s *CartService) recomputeTotal(tx *gorm.DB, cartID uint) error {
	items, err := s.CartRepo.ItemsWithFood(tx, cartID)
	if err != nil {
		return err
	}
	var total float64
	for _, it := range items {
		if it.FoodItem.ID == 0 {
			continue
		}
		total += it.FoodItem.Price * float64(it.Quantity)
	}
	return s.CartRepo.UpdateTotal(tx, cartID, total)
}
