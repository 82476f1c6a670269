package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
)

type (
	// OrderListQuery carries whitelisted equality/inclusion filters over order
	// columns plus the joined snapshot title, and a pre-computed page window.
	OrderListQuery struct {
		Filters map[string][]any
		Titles  []string
		Limit   int
		Offset  int
	}

	OrderWithTitle struct {
		models.TradeOrder
		Title *string `db:"title"`
	}

	OrderRepository interface {
		CreateOrder(ctx context.Context, tx *sqlx.Tx, order *models.TradeOrder) error
		GetOrderByUUID(ctx context.Context, orderUUID uuid.UUID) (*models.TradeOrder, error)
		GetOpenOrdersSince(ctx context.Context, userUID *uuid.UUID, since time.Time) (*[]models.TradeOrder, error)
		ListOrders(ctx context.Context, userUID *uuid.UUID, query OrderListQuery) (*[]OrderWithTitle, error)
		CountOrders(ctx context.Context, userUID *uuid.UUID, query OrderListQuery) (int, error)
		UpdateOrderStatus(ctx context.Context, tx *sqlx.Tx, orderUUID uuid.UUID, status models.OrderStatus, updatedAt time.Time, from ...models.OrderStatus) error
		CountOpenOrders() (int, error)
		GetOpenOrders(limit int, offset int) (*[]models.TradeOrder, error)
		GetDB() *sqlx.DB
	}

	OrderRepositoryImpl struct {
		db *sqlx.DB
	}
)

// ErrOrderStatusChanged reports a lost status transition: by the time the
// update ran the order was no longer in any of the expected source statuses.
var ErrOrderStatusChanged = errors.New("order status changed concurrently")

// filterColumns is the closed set of order columns callers may filter on.
var filterColumns = map[string]struct{}{
	"uuid":       {},
	"order_type": {},
	"status":     {},
	"amount":     {},
}

func NewOrderRepository(db *sqlx.DB) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{db: db}
}

func (or *OrderRepositoryImpl) CreateOrder(ctx context.Context, tx *sqlx.Tx, order *models.TradeOrder) error {
	query := `INSERT INTO trade_orders (uuid, user_uuid, order_type, amount, description, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, order.UUID, order.UserUUID, order.OrderType, order.Amount,
		order.Description, order.Status, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (or *OrderRepositoryImpl) GetOrderByUUID(ctx context.Context, orderUUID uuid.UUID) (*models.TradeOrder, error) {
	query := `SELECT * FROM trade_orders WHERE uuid = $1 AND status != $2;`
	order := &models.TradeOrder{}
	err := or.db.GetContext(ctx, order, query, orderUUID, models.OrderDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "Order not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// GetOpenOrdersSince returns the user's orders still awaiting payment created
// after the given instant. Used by the duplicate-order guard.
func (or *OrderRepositoryImpl) GetOpenOrdersSince(ctx context.Context, userUID *uuid.UUID, since time.Time) (*[]models.TradeOrder, error) {
	query := `SELECT * FROM trade_orders
			  WHERE user_uuid = $1 AND status IN ($2, $3) AND created_at > $4;`
	orders := make([]models.TradeOrder, 0)
	err := or.db.SelectContext(ctx, &orders, query, userUID, models.OrderInitialization, models.OrderPaying, since)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &orders, nil
		}
		return nil, fmt.Errorf("read open orders: %w", err)
	}
	return &orders, nil
}

func buildOrderFilter(userUID *uuid.UUID, q OrderListQuery) (string, []any, error) {
	clauses := []string{"o.user_uuid = ?", "o.status != ?"}
	args := []any{userUID, models.OrderDeleted}
	for column, values := range q.Filters {
		if _, ok := filterColumns[column]; !ok {
			return "", nil, appErrors.NewInvalidRequest(fmt.Sprintf("Unknown filter field %q", column))
		}
		if len(values) == 0 {
			continue
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
		clauses = append(clauses, fmt.Sprintf("o.%s IN (%s)", column, placeholders))
		args = append(args, values...)
	}
	if len(q.Titles) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(q.Titles)), ",")
		clauses = append(clauses, fmt.Sprintf("s.title IN (%s)", placeholders))
		for _, t := range q.Titles {
			args = append(args, t)
		}
	}
	return strings.Join(clauses, " AND "), args, nil
}

func (or *OrderRepositoryImpl) ListOrders(ctx context.Context, userUID *uuid.UUID, q OrderListQuery) (*[]OrderWithTitle, error) {
	where, args, err := buildOrderFilter(userUID, q)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT o.*, s.title AS title FROM trade_orders o
			  LEFT JOIN service_snapshots s ON s.trade_order_uuid = o.uuid
			  WHERE %s ORDER BY o.created_at DESC LIMIT ? OFFSET ?;`, where)
	args = append(args, q.Limit, q.Offset)

	orders := make([]OrderWithTitle, 0)
	err = or.db.SelectContext(ctx, &orders, or.db.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &orders, nil
		}
		return nil, fmt.Errorf("read user orders: %w", err)
	}
	return &orders, nil
}

func (or *OrderRepositoryImpl) CountOrders(ctx context.Context, userUID *uuid.UUID, q OrderListQuery) (int, error) {
	where, args, err := buildOrderFilter(userUID, q)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`SELECT count(*) FROM trade_orders o
			  LEFT JOIN service_snapshots s ON s.trade_order_uuid = o.uuid
			  WHERE %s;`, where)
	var count int
	err = or.db.GetContext(ctx, &count, or.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("count user orders: %w", err)
	}
	return count, nil
}

// UpdateOrderStatus moves the order into status. When source statuses are
// given the update is a compare-and-set: an order no longer in any of them is
// left untouched and ErrOrderStatusChanged is returned, so two concurrent
// settlements cannot both win the same transition.
func (or *OrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, tx *sqlx.Tx, orderUUID uuid.UUID, status models.OrderStatus, updatedAt time.Time, from ...models.OrderStatus) error {
	query := `UPDATE trade_orders SET status = ?, updated_at = ? WHERE uuid = ?`
	args := []any{status, updatedAt, orderUUID}
	if len(from) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(from)), ",")
		query += fmt.Sprintf(" AND status IN (%s)", placeholders)
		for _, s := range from {
			args = append(args, s)
		}
	}

	res, err := tx.ExecContext(ctx, or.db.Rebind(query+";"), args...)
	if err != nil {
		return fmt.Errorf("execute statement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrOrderStatusChanged
	}
	return nil
}

func (or *OrderRepositoryImpl) CountOpenOrders() (int, error) {
	query := `SELECT count(*) FROM trade_orders WHERE status IN ($1, $2);`
	var count int
	err := or.db.Get(&count, query, models.OrderInitialization, models.OrderPaying)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (or *OrderRepositoryImpl) GetOpenOrders(limit int, offset int) (*[]models.TradeOrder, error) {
	query := `SELECT * FROM trade_orders WHERE status IN ($1, $2) limit $3 offset $4;`
	orders := make([]models.TradeOrder, 0)
	err := or.db.Select(&orders, query, models.OrderInitialization, models.OrderPaying, limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &orders, nil
		}
		return nil, fmt.Errorf("read open orders: %w", err)
	}
	return &orders, nil
}

func (or *OrderRepositoryImpl) GetDB() *sqlx.DB {
	return or.db
}
