package repository

import (
	"context"
	"fmt"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	CreateBatch(ctx context.Context, orders []*entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	ListAll(ctx context.Context, status string) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// CreateBatch inserts all order lines of one checkout in a transaction.
func (r *orderRepository) CreateBatch(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create orders: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, order := range orders {
		_, err := tx.Exec(ctx, `
			INSERT INTO orders (id, user_id, product_id, quantity, total_price, status, ordered_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, order.ID, order.UserID, order.ProductID, order.Quantity, order.TotalPrice, order.Status, order.OrderedAt)
		if err != nil {
			r.log.Error("Failed to create order",
				zap.Error(err),
				zap.String("user_id", order.UserID.String()),
				zap.String("product_id", order.ProductID.String()),
			)
			return fmt.Errorf("create order for %s: %w", order.UserID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create orders: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, product_id, quantity, total_price, status, ordered_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.Quantity,
		&order.TotalPrice,
		&order.Status,
		&order.OrderedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, product_id, quantity, total_price, status, ordered_at
		FROM orders
		WHERE user_id = $1
		ORDER BY ordered_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list orders for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanOrders(rows, r.log)
}

// ListAll returns every order across users, optionally filtered by status.
func (r *orderRepository) ListAll(ctx context.Context, status string) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, product_id, quantity, total_price, status, ordered_at
		FROM orders
		ORDER BY ordered_at DESC
	`
	args := []any{}

	if status != "" {
		query = `
			SELECT id, user_id, product_id, quantity, total_price, status, ordered_at
			FROM orders
			WHERE status = $1
			ORDER BY ordered_at DESC
		`
		args = append(args, status)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list all orders",
			zap.Error(err),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows, r.log)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1
		RETURNING id, user_id, product_id, quantity, total_price, status, ordered_at
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id, status).Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.Quantity,
		&order.TotalPrice,
		&order.Status,
		&order.OrderedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("id", id.String()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update order %s status: %w", id.String(), err)
	}

	return &order, nil
}

func scanOrders(rows pgx.Rows, log *zap.Logger) ([]*entity.Order, error) {
	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.ProductID,
			&order.Quantity,
			&order.TotalPrice,
			&order.Status,
			&order.OrderedAt,
		)
		if err != nil {
			log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}
