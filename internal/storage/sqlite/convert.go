package sqlite

import (
	"foodserver/gen/model"
	"foodserver/internal/domain"

	"github.com/google/uuid"
)

func convertFood(food model.Foods) (domain.Food, error) {
	id, err := uuid.Parse(food.ID)
	if err != nil {
		return domain.Food{}, err
	}
	return domain.Food{
		ID:          id,
		Name:        food.Name,
		Category:    food.Category,
		Image:       food.Image,
		Description: food.Description,
		Price:       food.Price,
		CreatedAt:   food.CreatedAt,
	}, nil
}

func convertFoods(foods []model.Foods) ([]domain.Food, error) {
	converted := make([]domain.Food, 0, len(foods))
	for _, food := range foods {
		f, err := convertFood(food)
		if err != nil {
			return nil, err
		}
		converted = append(converted, f)
	}
	return converted, nil
}

func convertOrder(order model.Orders, items []model.OrderItems) (domain.Order, error) {
	id, err := uuid.Parse(order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	userID, err := uuid.Parse(order.UserID)
	if err != nil {
		return domain.Order{}, err
	}
	o := domain.Order{
		ID:         id,
		UserID:     userID,
		TotalPrice: order.TotalPrice,
		IsPaid:     order.IsPaid,
		Status:     domain.OrderStatus(order.Status),
		CreatedAt:  order.CreatedAt,
	}
	for _, item := range items {
		foodID, err := uuid.Parse(item.FoodID)
		if err != nil {
			return domain.Order{}, err
		}
		o.Items = append(o.Items, domain.OrderItem{
			FoodID:   foodID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: int(item.Quantity),
		})
	}
	return o, nil
}
