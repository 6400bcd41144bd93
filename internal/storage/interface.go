package storage

import (
	"foodserver/internal/domain"

	"github.com/google/uuid"
)

type FoodStorage interface {
	ListFoods() ([]domain.Food, error)
	GetFood(uuid.UUID) (domain.Food, error)
	AddFood(domain.Food) (domain.Food, error)
	UpdateFood(domain.Food) error
	DeleteFood(uuid.UUID) error
}

type CartStorage interface {
	GetCart(userID uuid.UUID) ([]domain.CartItem, error)
	AddToCart(userID, foodID uuid.UUID, quantity int) error
	ClearCart(userID uuid.UUID) error
}

type OrderStorage interface {
	CreateOrder(domain.Order) (domain.Order, error)
	ListOrders(userID uuid.UUID) ([]domain.Order, error)
	ListAllOrders() ([]domain.Order, error)
	GetOrder(uuid.UUID) (domain.Order, error)
	UpdateOrderStatus(id uuid.UUID, status domain.OrderStatus) error
	DeleteOrder(uuid.UUID) error
}
