package domain

import (
	"time"

	"github.com/google/uuid"
)

type Food struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Image       string
	Description string
	Price       float64
	CreatedAt   time.Time
}

type CartItem struct {
	Food     Food
	Quantity int
}

type Cart struct {
	Items      []CartItem
	TotalPrice float64
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}
