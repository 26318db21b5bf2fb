package services

import "errors"

// Sentinel errors; controllers map them onto 400/404 with errors.Is.
var (
	ErrFoodNotFound       = errors.New("food item not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrOrderNotFound      = errors.New("order not found")

	ErrCartEmpty            = errors.New("cart is empty")
	ErrAddressRequired      = errors.New("delivery address is required")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	ErrNameRequired     = errors.New("name is required")
	ErrAddressMissing   = errors.New("address is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrNegativePrice    = errors.New("price must not be negative")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
