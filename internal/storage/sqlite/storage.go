package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"foodserver/gen/model"
	"foodserver/gen/table"
	"foodserver/internal/config"
	"foodserver/internal/domain"
	migrations "foodserver/internal/migrate"
	"foodserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.FoodStorage = (*Storage)(nil)
var _ storage.CartStorage = (*Storage)(nil)
var _ storage.OrderStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := sql.Open("sqlite3", "file:"+cfg.SqliteFile+"?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrations.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) ListFoods() ([]domain.Food, error) {
	var foods []model.Foods
	err := table.Foods.
		SELECT(table.Foods.AllColumns).
		FROM(table.Foods).
		Query(s.db, &foods)
	if err != nil {
		return nil, err
	}
	return convertFoods(foods)
}

func (s *Storage) GetFood(id uuid.UUID) (domain.Food, error) {
	var food model.Foods
	err := table.Foods.
		SELECT(table.Foods.AllColumns).
		FROM(table.Foods).
		WHERE(table.Foods.ID.EQ(sqlite.UUID(id))).
		Query(s.db, &food)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Food{}, sql.ErrNoRows
		}
		return domain.Food{}, err
	}
	return convertFood(food)
}

func (s *Storage) AddFood(food domain.Food) (domain.Food, error) {
	food.CreatedAt = time.Now()
	dbFood := model.Foods{
		ID:          food.ID.String(),
		Name:        food.Name,
		Category:    food.Category,
		Image:       food.Image,
		Description: food.Description,
		Price:       food.Price,
		CreatedAt:   food.CreatedAt,
	}
	_, err := table.Foods.INSERT(table.Foods.AllColumns).MODEL(dbFood).Exec(s.db)
	if err != nil {
		return domain.Food{}, err
	}
	return food, nil
}

func (s *Storage) UpdateFood(food domain.Food) error {
	dbFood := model.Foods{
		Name:        food.Name,
		Category:    food.Category,
		Image:       food.Image,
		Description: food.Description,
		Price:       food.Price,
	}
	res, err := table.Foods.
		UPDATE(
			table.Foods.Name,
			table.Foods.Category,
			table.Foods.Image,
			table.Foods.Description,
			table.Foods.Price,
		).
		MODEL(dbFood).
		WHERE(table.Foods.ID.EQ(sqlite.UUID(food.ID))).
		Exec(s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Storage) DeleteFood(id uuid.UUID) error {
	res, err := table.Foods.
		DELETE().
		WHERE(table.Foods.ID.EQ(sqlite.UUID(id))).
		Exec(s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Storage) GetCart(userID uuid.UUID) ([]domain.CartItem, error) {
	var dest []struct {
		model.CartItems
		Foods model.Foods
	}
	err := table.CartItems.
		SELECT(table.CartItems.AllColumns, table.Foods.AllColumns).
		FROM(table.CartItems.INNER_JOIN(table.Foods, table.Foods.ID.EQ(table.CartItems.FoodID))).
		WHERE(table.CartItems.UserID.EQ(sqlite.UUID(userID))).
		Query(s.db, &dest)
	if err != nil {
		return nil, err
	}
	items := make([]domain.CartItem, 0, len(dest))
	for _, row := range dest {
		food, err := convertFood(row.Foods)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.CartItem{
			Food:     food,
			Quantity: int(row.Quantity),
		})
	}
	return items, nil
}

func (s *Storage) AddToCart(userID, foodID uuid.UUID, quantity int) error {
	var existing model.CartItems
	err := table.CartItems.
		SELECT(table.CartItems.AllColumns).
		FROM(table.CartItems).
		WHERE(table.CartItems.UserID.EQ(sqlite.UUID(userID)).
			AND(table.CartItems.FoodID.EQ(sqlite.UUID(foodID)))).
		Query(s.db, &existing)
	if err != nil {
		if !errors.Is(err, qrm.ErrNoRows) {
			return err
		}
		item := model.CartItems{
			UserID:   userID.String(),
			FoodID:   foodID.String(),
			Quantity: int32(quantity),
		}
		_, err = table.CartItems.INSERT(table.CartItems.AllColumns).MODEL(item).Exec(s.db)
		return err
	}
	existing.Quantity += int32(quantity)
	_, err = table.CartItems.
		UPDATE(table.CartItems.Quantity).
		MODEL(existing).
		WHERE(table.CartItems.UserID.EQ(sqlite.UUID(userID)).
			AND(table.CartItems.FoodID.EQ(sqlite.UUID(foodID)))).
		Exec(s.db)
	return err
}

func (s *Storage) ClearCart(userID uuid.UUID) error {
	_, err := table.CartItems.
		DELETE().
		WHERE(table.CartItems.UserID.EQ(sqlite.UUID(userID))).
		Exec(s.db)
	return err
}

func (s *Storage) CreateOrder(order domain.Order) (domain.Order, error) {
	order.CreatedAt = time.Now()
	dbOrder := model.Orders{
		ID:         order.ID.String(),
		UserID:     order.UserID.String(),
		TotalPrice: order.TotalPrice,
		IsPaid:     order.IsPaid,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
	_, err := table.Orders.INSERT(table.Orders.AllColumns).MODEL(dbOrder).Exec(s.db)
	if err != nil {
		return domain.Order{}, err
	}
	for _, item := range order.Items {
		dbItem := model.OrderItems{
			OrderID:  order.ID.String(),
			FoodID:   item.FoodID.String(),
			Name:     item.Name,
			Price:    item.Price,
			Quantity: int32(item.Quantity),
		}
		_, err = table.OrderItems.INSERT(table.OrderItems.AllColumns).MODEL(dbItem).Exec(s.db)
		if err != nil {
			return domain.Order{}, err
		}
	}
	return order, nil
}

func (s *Storage) ListOrders(userID uuid.UUID) ([]domain.Order, error) {
	return s.listOrders(table.Orders.UserID.EQ(sqlite.UUID(userID)))
}

func (s *Storage) ListAllOrders() ([]domain.Order, error) {
	return s.listOrders(nil)
}

func (s *Storage) listOrders(where sqlite.BoolExpression) ([]domain.Order, error) {
	var dest []struct {
		model.Orders
		OrderItems []model.OrderItems
	}
	stmt := table.Orders.
		SELECT(table.Orders.AllColumns, table.OrderItems.AllColumns).
		FROM(table.Orders.LEFT_JOIN(table.OrderItems, table.OrderItems.OrderID.EQ(table.Orders.ID)))
	if where != nil {
		stmt = stmt.WHERE(where)
	}
	err := stmt.ORDER_BY(table.Orders.CreatedAt.DESC()).Query(s.db, &dest)
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(dest))
	for _, row := range dest {
		order, err := convertOrder(row.Orders, row.OrderItems)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *Storage) GetOrder(id uuid.UUID) (domain.Order, error) {
	var dest struct {
		model.Orders
		OrderItems []model.OrderItems
	}
	err := table.Orders.
		SELECT(table.Orders.AllColumns, table.OrderItems.AllColumns).
		FROM(table.Orders.LEFT_JOIN(table.OrderItems, table.OrderItems.OrderID.EQ(table.Orders.ID))).
		WHERE(table.Orders.ID.EQ(sqlite.UUID(id))).
		Query(s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Order{}, sql.ErrNoRows
		}
		return domain.Order{}, err
	}
	return convertOrder(dest.Orders, dest.OrderItems)
}

func (s *Storage) UpdateOrderStatus(id uuid.UUID, status domain.OrderStatus) error {
	dbOrder := model.Orders{Status: string(status)}
	res, err := table.Orders.
		UPDATE(table.Orders.Status).
		MODEL(dbOrder).
		WHERE(table.Orders.ID.EQ(sqlite.UUID(id))).
		Exec(s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Storage) DeleteOrder(id uuid.UUID) error {
	_, err := table.OrderItems.
		DELETE().
		WHERE(table.OrderItems.OrderID.EQ(sqlite.UUID(id))).
		Exec(s.db)
	if err != nil {
		return err
	}
	res, err := table.Orders.
		DELETE().
		WHERE(table.Orders.ID.EQ(sqlite.UUID(id))).
		Exec(s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
