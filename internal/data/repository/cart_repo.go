package repository

import (
	"context"
	"fmt"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)
	Upsert(ctx context.Context, item *entity.CartItem) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	RemoveProducts(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error
	ReplaceForUser(ctx context.Context, userID uuid.UUID, items []*entity.CartItem) error
	ClearForUser(ctx context.Context, userID uuid.UUID) error
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, added_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY added_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list cart items",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list cart items for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var items []*entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.AddedAt); err != nil {
			r.log.Error("Failed to scan cart item row", zap.Error(err))
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cart item rows: %w", err)
	}

	return items, nil
}

// Upsert reconciles the quantity of an existing line or inserts a new one.
// One line per (user, product) is enforced by a unique constraint.
func (r *cartRepository) Upsert(ctx context.Context, item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.ProductID,
		item.Quantity,
		item.AddedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert cart item",
			zap.Error(err),
			zap.String("user_id", item.UserID.String()),
			zap.String("product_id", item.ProductID.String()),
		)
		return fmt.Errorf("upsert cart item for %s: %w", item.UserID.String(), err)
	}

	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	_, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		r.log.Error("Failed to remove cart item",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("product_id", productID.String()),
		)
		return fmt.Errorf("remove cart item for %s: %w", userID.String(), err)
	}

	return nil
}

func (r *cartRepository) RemoveProducts(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = ANY($2)`

	_, err := r.db.Exec(ctx, query, userID, productIDs)
	if err != nil {
		r.log.Error("Failed to remove purchased cart items",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("count", len(productIDs)),
		)
		return fmt.Errorf("remove purchased cart items for %s: %w", userID.String(), err)
	}

	return nil
}

// ReplaceForUser swaps the whole cart in one transaction, used by the
// wholesale profile update.
func (r *cartRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, items []*entity.CartItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace cart for %s: %w", userID.String(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		r.log.Error("Failed to clear cart", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("clear cart for %s: %w", userID.String(), err)
	}

	for _, item := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO cart_items (id, user_id, product_id, quantity, added_at)
			VALUES ($1, $2, $3, $4, $5)
		`, item.ID, item.UserID, item.ProductID, item.Quantity, item.AddedAt)
		if err != nil {
			r.log.Error("Failed to insert cart item",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.String("product_id", item.ProductID.String()),
			)
			return fmt.Errorf("insert cart item for %s: %w", userID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace cart for %s: %w", userID.String(), err)
	}

	return nil
}

func (r *cartRepository) ClearForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error("Failed to clear cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("clear cart for %s: %w", userID.String(), err)
	}

	return nil
}
