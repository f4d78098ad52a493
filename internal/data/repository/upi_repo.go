package repository

import (
	"context"
	"fmt"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UPIRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UPI, error)
	ReplaceForUser(ctx context.Context, userID uuid.UUID, upis []*entity.UPI) error
}

type upiRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUPIRepository(db database.PgxIface, log *zap.Logger) UPIRepository {
	return &upiRepository{
		db:  db,
		log: log.With(zap.String("repository", "upi")),
	}
}

func (r *upiRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UPI, error) {
	query := `
		SELECT id, user_id, label, upi_id, is_default, added_at
		FROM upi_ids
		WHERE user_id = $1
		ORDER BY added_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list UPI handles",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list UPI handles for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var upis []*entity.UPI
	for rows.Next() {
		var upi entity.UPI
		if err := rows.Scan(&upi.ID, &upi.UserID, &upi.Label, &upi.UPIID, &upi.IsDefault, &upi.AddedAt); err != nil {
			r.log.Error("Failed to scan UPI row", zap.Error(err))
			return nil, fmt.Errorf("scan UPI row: %w", err)
		}
		upis = append(upis, &upi)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate UPI rows: %w", err)
	}

	return upis, nil
}

func (r *upiRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, upis []*entity.UPI) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace UPI handles for %s: %w", userID.String(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM upi_ids WHERE user_id = $1`, userID); err != nil {
		r.log.Error("Failed to clear UPI handles", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("clear UPI handles for %s: %w", userID.String(), err)
	}

	for _, upi := range upis {
		_, err := tx.Exec(ctx, `
			INSERT INTO upi_ids (id, user_id, label, upi_id, is_default, added_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, upi.ID, upi.UserID, upi.Label, upi.UPIID, upi.IsDefault, upi.AddedAt)
		if err != nil {
			r.log.Error("Failed to insert UPI handle",
				zap.Error(err),
				zap.String("user_id", userID.String()),
			)
			return fmt.Errorf("insert UPI handle for %s: %w", userID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace UPI handles for %s: %w", userID.String(), err)
	}

	return nil
}
