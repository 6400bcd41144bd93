package web

import (
	"errors"
	"time"

	"foodserver/auth/users"
	"foodserver/internal/domain"

	"github.com/google/uuid"
)

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func convertUser(user users.User) userPayload {
	return userPayload{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

type foodPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func convertFood(food domain.Food) foodPayload {
	return foodPayload{
		ID:          food.ID.String(),
		Name:        food.Name,
		Category:    food.Category,
		Image:       food.Image,
		Description: food.Description,
		Price:       food.Price,
	}
}

func convertFoods(foods []domain.Food) []foodPayload {
	converted := make([]foodPayload, 0, len(foods))
	for _, food := range foods {
		converted = append(converted, convertFood(food))
	}
	return converted
}

type cartItemPayload struct {
	Food     foodPayload `json:"food"`
	Quantity int         `json:"quantity"`
}

type cartPayload struct {
	Items      []cartItemPayload `json:"items"`
	TotalPrice float64           `json:"totalPrice"`
}

func convertCart(cart domain.Cart) cartPayload {
	payload := cartPayload{
		Items:      make([]cartItemPayload, 0, len(cart.Items)),
		TotalPrice: cart.TotalPrice,
	}
	for _, item := range cart.Items {
		payload.Items = append(payload.Items, cartItemPayload{
			Food:     convertFood(item.Food),
			Quantity: item.Quantity,
		})
	}
	return payload
}

type orderItemPayload struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type orderPayload struct {
	ID         string             `json:"id"`
	UserID     string             `json:"userId"`
	Items      []orderItemPayload `json:"items"`
	TotalPrice float64            `json:"totalPrice"`
	IsPaid     bool               `json:"isPaid"`
	Status     string             `json:"orderStatus"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func convertOrder(order domain.Order) orderPayload {
	payload := orderPayload{
		ID:         order.ID.String(),
		UserID:     order.UserID.String(),
		Items:      make([]orderItemPayload, 0, len(order.Items)),
		TotalPrice: order.TotalPrice,
		IsPaid:     order.IsPaid,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, orderItemPayload{
			FoodID:   item.FoodID.String(),
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return payload
}

func convertOrders(orders []domain.Order) []orderPayload {
	converted := make([]orderPayload, 0, len(orders))
	for _, order := range orders {
		converted = append(converted, convertOrder(order))
	}
	return converted
}

type createFood struct {
	Name        string  `json:"name" form:"name"`
	Category    string  `json:"category" form:"category"`
	Image       string  `json:"image" form:"image"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
}

var ErrMissingFoodName = errors.New("food name is required")
var ErrMissingCategory = errors.New("food category is required")
var ErrBadPrice = errors.New("price must be positive")

func (c createFood) Validate() error {
	var err error
	if c.Name == "" {
		err = errors.Join(err, ErrMissingFoodName)
	}
	if c.Category == "" {
		err = errors.Join(err, ErrMissingCategory)
	}
	if c.Price <= 0 {
		err = errors.Join(err, ErrBadPrice)
	}
	return err
}

func (c createFood) convertToDomainFood() domain.Food {
	return domain.Food{
		Name:        c.Name,
		Category:    c.Category,
		Image:       c.Image,
		Description: c.Description,
		Price:       c.Price,
	}
}

type addToCart struct {
	FoodID   uuid.UUID `json:"foodId" form:"foodId"`
	Quantity int       `json:"quantity" form:"quantity"`
}

var ErrMissingFood = errors.New("food id is required")

func (c addToCart) Validate() error {
	if c.FoodID == uuid.Nil {
		return ErrMissingFood
	}
	return nil
}

type updateStatus struct {
	Status string `json:"orderStatus" form:"orderStatus"`
}
