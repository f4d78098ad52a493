package repository

import (
	"context"
	"fmt"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentOrderRepository interface {
	Create(ctx context.Context, order *entity.PaymentOrder) error
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error)
	MarkPaid(ctx context.Context, gatewayOrderID string) (bool, error)
}

type paymentOrderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentOrderRepository(db database.PgxIface, log *zap.Logger) PaymentOrderRepository {
	return &paymentOrderRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_order")),
	}
}

func (r *paymentOrderRepository) Create(ctx context.Context, order *entity.PaymentOrder) error {
	query := `
		INSERT INTO payment_orders (id, user_id, gateway_order_id, amount, currency, receipt, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		order.GatewayOrderID,
		order.Amount,
		order.Currency,
		order.Receipt,
		order.Status,
		order.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment order",
			zap.Error(err),
			zap.String("gateway_order_id", order.GatewayOrderID),
		)
		return fmt.Errorf("create payment order %s: %w", order.GatewayOrderID, err)
	}

	return nil
}

func (r *paymentOrderRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error) {
	query := `
		SELECT id, user_id, gateway_order_id, amount, currency, receipt, status, created_at
		FROM payment_orders
		WHERE gateway_order_id = $1
	`

	var order entity.PaymentOrder
	err := r.db.QueryRow(ctx, query, gatewayOrderID).Scan(
		&order.ID,
		&order.UserID,
		&order.GatewayOrderID,
		&order.Amount,
		&order.Currency,
		&order.Receipt,
		&order.Status,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment order",
			zap.Error(err),
			zap.String("gateway_order_id", gatewayOrderID),
		)
		return nil, fmt.Errorf("find payment order %s: %w", gatewayOrderID, err)
	}

	return &order, nil
}

// MarkPaid flips a created order to paid, guarded so a replayed verification
// cannot place the purchase twice.
func (r *paymentOrderRepository) MarkPaid(ctx context.Context, gatewayOrderID string) (bool, error) {
	query := `
		UPDATE payment_orders
		SET status = 'paid'
		WHERE gateway_order_id = $1 AND status = 'created'
	`

	result, err := r.db.Exec(ctx, query, gatewayOrderID)
	if err != nil {
		r.log.Error("Failed to mark payment order paid",
			zap.Error(err),
			zap.String("gateway_order_id", gatewayOrderID),
		)
		return false, fmt.Errorf("mark payment order %s paid: %w", gatewayOrderID, err)
	}

	return result.RowsAffected() > 0, nil
}
