package services

import (
	"errors"
	"strings"

	"github.com/surajprakash3/Foodie-project/entity"
	"github.com/surajprakash3/Foodie-project/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Logger   *zap.Logger
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, logger *zap.Logger) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Logger: logger}
}

type PlaceOrderIn struct {
	DeliveryAddress string `json:"deliveryAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

// Place converts the user's cart into an order. Item details are snapshotted
// from the current catalog; this is the last point where catalog data is
// read for this order. Order creation and cart reset run in one transaction.
func (s *OrderService) Place(userID uint, in *PlaceOrderIn) (*entity.Order, error) {
	addr := strings.TrimSpace(in.DeliveryAddress)
	if addr == "" {
		return nil, ErrAddressRequired
	}

	method := in.PaymentMethod
	if method == "" {
		method = entity.PaymentCOD
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if cart.ID == 0 || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.FoodItem.ID == 0 {
			// the food was deleted after it went into the cart;
			// nothing left to snapshot
			continue
		}
		items = append(items, entity.OrderItem{
			FoodItemID: it.FoodItemID,
			Name:       it.FoodItem.Name,
			Price:      it.FoodItem.Price,
			Quantity:   it.Quantity,
			Image:      it.FoodItem.Image,
		})
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &entity.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     cart.TotalAmount, // copied, not recomputed
		DeliveryAddress: addr,
		PaymentMethod:   method,
		Status:          entity.StatusPending,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		if err := s.CartRepo.DeleteItems(tx, cart.ID); err != nil {
			return err
		}
		return s.CartRepo.UpdateTotal(tx, cart.ID, 0)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("order placed",
		zap.Uint("orderId", order.ID),
		zap.Uint("userId", userID),
		zap.Float64("total", order.TotalAmount))
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

type OrderCustomer struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminOrderOut struct {
	entity.Order
	User OrderCustomer `json:"user"`
}

// ListAll is the admin view: every order plus the ordering user's name/email.
func (s *OrderService) ListAll() ([]AdminOrderOut, error) {
	orders, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]AdminOrderOut, 0, len(orders))
	for _, o := range orders {
		view := AdminOrderOut{
			Order: o,
			User:  OrderCustomer{ID: o.User.ID, Name: o.User.Name, Email: o.User.Email},
		}
		out = append(out, view)
	}
	return out, nil
}

// UpdateStatus sets any recognized status from any state; only membership in
// the status set is checked.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := s.Repo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.Logger.Info("order status updated",
		zap.Uint("orderId", order.ID),
		zap.String("status", status))
	return order, nil
}
