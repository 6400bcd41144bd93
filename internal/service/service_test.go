package service

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"foodserver/internal/domain"

	"github.com/google/uuid"
)

type memStorage struct {
	foods  map[uuid.UUID]domain.Food
	carts  map[uuid.UUID][]domain.CartItem
	orders map[uuid.UUID]domain.Order
}

func newMemStorage() *memStorage {
	return &memStorage{
		foods:  make(map[uuid.UUID]domain.Food),
		carts:  make(map[uuid.UUID][]domain.CartItem),
		orders: make(map[uuid.UUID]domain.Order),
	}
}

func (m *memStorage) ListFoods() ([]domain.Food, error) {
	foods := make([]domain.Food, 0, len(m.foods))
	for _, f := range m.foods {
		foods = append(foods, f)
	}
	return foods, nil
}

func (m *memStorage) GetFood(id uuid.UUID) (domain.Food, error) {
	f, ok := m.foods[id]
	if !ok {
		return domain.Food{}, sql.ErrNoRows
	}
	return f, nil
}

func (m *memStorage) AddFood(food domain.Food) (domain.Food, error) {
	m.foods[food.ID] = food
	return food, nil
}

func (m *memStorage) UpdateFood(food domain.Food) error {
	if _, ok := m.foods[food.ID]; !ok {
		return sql.ErrNoRows
	}
	m.foods[food.ID] = food
	return nil
}

func (m *memStorage) DeleteFood(id uuid.UUID) error {
	if _, ok := m.foods[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.foods, id)
	return nil
}

func (m *memStorage) GetCart(userID uuid.UUID) ([]domain.CartItem, error) {
	return m.carts[userID], nil
}

func (m *memStorage) AddToCart(userID, foodID uuid.UUID, quantity int) error {
	items := m.carts[userID]
	for i := range items {
		if items[i].Food.ID == foodID {
			items[i].Quantity += quantity
			return nil
		}
	}
	m.carts[userID] = append(items, domain.CartItem{Food: m.foods[foodID], Quantity: quantity})
	return nil
}

func (m *memStorage) ClearCart(userID uuid.UUID) error {
	delete(m.carts, userID)
	return nil
}

func (m *memStorage) CreateOrder(order domain.Order) (domain.Order, error) {
	m.orders[order.ID] = order
	return order, nil
}

func (m *memStorage) ListOrders(userID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *memStorage) ListAllOrders() ([]domain.Order, error) {
	var orders []domain.Order
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (m *memStorage) GetOrder(id uuid.UUID) (domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return domain.Order{}, sql.ErrNoRows
	}
	return o, nil
}

func (m *memStorage) UpdateOrderStatus(id uuid.UUID, status domain.OrderStatus) error {
	o, ok := m.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = status
	m.orders[id] = o
	return nil
}

func (m *memStorage) DeleteOrder(id uuid.UUID) error {
	if _, ok := m.orders[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.orders, id)
	return nil
}

func newTestService() (*FoodService, *memStorage) {
	st := newMemStorage()
	svc := New(st, st, st)
	svc.payment = func() bool { return true }
	return svc, st
}

func addFood(t *testing.T, svc *FoodService, name, category string, price float64) domain.Food {
	t.Helper()
	food, err := svc.CreateFood(domain.Food{Name: name, Category: category, Price: price})
	if err != nil {
		t.Fatalf("CreateFood(%q) error = %v", name, err)
	}
	return food
}

func TestCategories(t *testing.T) {
	svc, _ := newTestService()
	addFood(t, svc, "Margherita", "pizza", 9.5)
	addFood(t, svc, "Pepperoni", "Pizza", 11)
	addFood(t, svc, "Tiramisu", "desserts", 6)

	got, err := svc.Categories()
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	want := []string{"Desserts", "Pizza"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestCreateFoodValidation(t *testing.T) {
	svc, _ := newTestService()
	tests := []struct {
		name string
		food domain.Food
	}{
		{name: "empty name", food: domain.Food{Category: "Pizza", Price: 10}},
		{name: "empty category", food: domain.Food{Name: "Margherita", Price: 10}},
		{name: "zero price", food: domain.Food{Name: "Margherita", Category: "Pizza"}},
		{name: "negative price", food: domain.Food{Name: "Margherita", Category: "Pizza", Price: -1}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateFood(tt.food); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("CreateFood() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAddToCart(t *testing.T) {
	svc, _ := newTestService()
	food := addFood(t, svc, "Margherita", "Pizza", 9.5)
	userID := uuid.New()

	if err := svc.AddToCart(userID, food.ID, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("AddToCart(quantity 0) error = %v, want ErrInvalidInput", err)
	}
	if err := svc.AddToCart(userID, uuid.New(), 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddToCart(unknown food) error = %v, want ErrNotFound", err)
	}

	if err := svc.AddToCart(userID, food.ID, 2); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	cart, err := svc.GetCart(userID)
	if err != nil {
		t.Fatalf("GetCart() error = %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Errorf("GetCart() items = %v", cart.Items)
	}
	if cart.TotalPrice != 19 {
		t.Errorf("GetCart() total = %v, want 19", cart.TotalPrice)
	}
}

func TestCheckout(t *testing.T) {
	svc, _ := newTestService()
	pizza := addFood(t, svc, "Margherita", "Pizza", 9.5)
	dessert := addFood(t, svc, "Tiramisu", "Desserts", 6)
	userID := uuid.New()

	if _, err := svc.Checkout(userID); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("Checkout(empty cart) error = %v, want ErrEmptyCart", err)
	}

	if err := svc.AddToCart(userID, pizza.ID, 2); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddToCart(userID, dessert.ID, 1); err != nil {
		t.Fatal(err)
	}

	svc.payment = func() bool { return false }
	if _, err := svc.Checkout(userID); !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("Checkout(payment declined) error = %v, want ErrPaymentFailed", err)
	}
	cart, _ := svc.GetCart(userID)
	if cart.Empty() {
		t.Fatal("cart cleared after declined payment")
	}

	svc.payment = func() bool { return true }
	order, err := svc.Checkout(userID)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if order.TotalPrice != 25 {
		t.Errorf("order total = %v, want 25", order.TotalPrice)
	}
	if order.Status != domain.StatusProcessing {
		t.Errorf("order status = %q, want %q", order.Status, domain.StatusProcessing)
	}
	if !order.IsPaid {
		t.Error("order not marked paid")
	}
	if len(order.Items) != 2 {
		t.Errorf("order items = %d, want 2", len(order.Items))
	}

	cart, _ = svc.GetCart(userID)
	if !cart.Empty() {
		t.Error("cart not cleared after checkout")
	}

	orders, err := svc.Orders(userID)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Errorf("Orders() = %v", orders)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _ := newTestService()
	pizza := addFood(t, svc, "Margherita", "Pizza", 9.5)
	userID := uuid.New()
	if err := svc.AddToCart(userID, pizza.ID, 1); err != nil {
		t.Fatal(err)
	}
	order, err := svc.Checkout(userID)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, "Lost"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("UpdateOrderStatus(invalid) error = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.UpdateOrderStatus(uuid.New(), domain.StatusDelivering); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateOrderStatus(unknown) error = %v, want ErrNotFound", err)
	}

	updated, err := svc.UpdateOrderStatus(order.ID, domain.StatusDelivering)
	if err != nil {
		t.Fatalf("UpdateOrderStatus() error = %v", err)
	}
	if updated.Status != domain.StatusDelivering {
		t.Errorf("status = %q, want %q", updated.Status, domain.StatusDelivering)
	}
}

func TestDeleteOrder(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.DeleteOrder(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteOrder(unknown) error = %v, want ErrNotFound", err)
	}
}
