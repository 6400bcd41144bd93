package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusProcessing OrderStatus = "In Processing"
	StatusDelivering OrderStatus = "Delivering"
	StatusDelivered  OrderStatus = "Delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusProcessing, StatusDelivering, StatusDelivered:
		return true
	}
	return false
}

type OrderItem struct {
	FoodID   uuid.UUID
	Name     string
	Price    float64
	Quantity int
}

type Order struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Items      []OrderItem
	TotalPrice float64
	IsPaid     bool
	Status     OrderStatus
	CreatedAt  time.Time
}
