package service

import (
	"database/sql"
	"errors"
	"math/rand"
	"sort"

	"foodserver/internal/domain"
	"foodserver/internal/normalize"
	"foodserver/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrPaymentFailed = errors.New("payment failed")
	ErrInvalidStatus = errors.New("invalid order status")
)

type FoodService struct {
	foodStorage  storage.FoodStorage
	cartStorage  storage.CartStorage
	orderStorage storage.OrderStorage

	// payment simulates the payment provider: true means the charge went
	// through.
	payment func() bool
}

func New(foodStorage storage.FoodStorage, cartStorage storage.CartStorage, orderStorage storage.OrderStorage) *FoodService {
	return &FoodService{
		foodStorage:  foodStorage,
		cartStorage:  cartStorage,
		orderStorage: orderStorage,
		payment: func() bool {
			return rand.Float64() > 0.1
		},
	}
}

func (s *FoodService) ListFoods() ([]domain.Food, error) {
	return s.foodStorage.ListFoods()
}

func (s *FoodService) GetFood(id uuid.UUID) (domain.Food, error) {
	food, err := s.foodStorage.GetFood(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Food{}, ErrNotFound
		}
		return domain.Food{}, err
	}
	return food, nil
}

// Categories returns the distinct food categories, sorted.
func (s *FoodService) Categories() ([]string, error) {
	foods, err := s.foodStorage.ListFoods()
	if err != nil {
		return nil, err
	}
	set := mapset.NewSet[string]()
	for _, food := range foods {
		set.Add(food.Category)
	}
	categories := set.ToSlice()
	sort.Strings(categories)
	return categories, nil
}

func (s *FoodService) CreateFood(food domain.Food) (domain.Food, error) {
	if food.Name == "" || food.Category == "" || food.Price <= 0 {
		return domain.Food{}, ErrInvalidInput
	}
	food.ID = uuid.New()
	food.Category = normalize.Category(food.Category)
	return s.foodStorage.AddFood(food)
}

func (s *FoodService) UpdateFood(food domain.Food) error {
	if food.Name == "" || food.Category == "" || food.Price <= 0 {
		return ErrInvalidInput
	}
	food.Category = normalize.Category(food.Category)
	err := s.foodStorage.UpdateFood(food)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *FoodService) DeleteFood(id uuid.UUID) error {
	err := s.foodStorage.DeleteFood(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *FoodService) AddToCart(userID, foodID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidInput
	}
	if _, err := s.GetFood(foodID); err != nil {
		return err
	}
	return s.cartStorage.AddToCart(userID, foodID, quantity)
}

func (s *FoodService) GetCart(userID uuid.UUID) (domain.Cart, error) {
	items, err := s.cartStorage.GetCart(userID)
	if err != nil {
		return domain.Cart{}, err
	}
	cart := domain.Cart{Items: items}
	for _, item := range items {
		cart.TotalPrice += item.Food.Price * float64(item.Quantity)
	}
	return cart, nil
}

// Checkout turns the user's cart into an order. The cart is cleared only
// after the order is persisted.
func (s *FoodService) Checkout(userID uuid.UUID) (domain.Order, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return domain.Order{}, err
	}
	if cart.Empty() {
		return domain.Order{}, ErrEmptyCart
	}
	if !s.payment() {
		return domain.Order{}, ErrPaymentFailed
	}
	order := domain.Order{
		ID:         uuid.New(),
		UserID:     userID,
		TotalPrice: cart.TotalPrice,
		IsPaid:     true,
		Status:     domain.StatusProcessing,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			FoodID:   item.Food.ID,
			Name:     item.Food.Name,
			Price:    item.Food.Price,
			Quantity: item.Quantity,
		})
	}
	order, err = s.orderStorage.CreateOrder(order)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.cartStorage.ClearCart(userID); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *FoodService) Orders(userID uuid.UUID) ([]domain.Order, error) {
	return s.orderStorage.ListOrders(userID)
}

func (s *FoodService) AllOrders() ([]domain.Order, error) {
	return s.orderStorage.ListAllOrders()
}

func (s *FoodService) UpdateOrderStatus(id uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, ErrInvalidStatus
	}
	err := s.orderStorage.UpdateOrderStatus(id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, ErrNotFound
		}
		return domain.Order{}, err
	}
	order, err := s.orderStorage.GetOrder(id)
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *FoodService) DeleteOrder(id uuid.UUID) error {
	err := s.orderStorage.DeleteOrder(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
