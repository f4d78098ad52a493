package repository

import (
	"context"
	"fmt"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddressRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	ReplaceForUser(ctx context.Context, userID uuid.UUID, addresses []*entity.Address) error
}

type addressRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddressRepository(db database.PgxIface, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log.With(zap.String("repository", "address")),
	}
}

func (r *addressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	query := `
		SELECT id, user_id, label, street, city, state, pincode, is_default
		FROM addresses
		WHERE user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list addresses",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list addresses for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var addresses []*entity.Address
	for rows.Next() {
		var addr entity.Address
		if err := rows.Scan(&addr.ID, &addr.UserID, &addr.Label, &addr.Street,
			&addr.City, &addr.State, &addr.Pincode, &addr.IsDefault); err != nil {
			r.log.Error("Failed to scan address row", zap.Error(err))
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		addresses = append(addresses, &addr)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate address rows: %w", err)
	}

	return addresses, nil
}

// ReplaceForUser swaps the user's address book wholesale, matching the
// profile update contract.
func (r *addressRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, addresses []*entity.Address) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace addresses for %s: %w", userID.String(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM addresses WHERE user_id = $1`, userID); err != nil {
		r.log.Error("Failed to clear addresses", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("clear addresses for %s: %w", userID.String(), err)
	}

	for _, addr := range addresses {
		_, err := tx.Exec(ctx, `
			INSERT INTO addresses (id, user_id, label, street, city, state, pincode, is_default)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, addr.ID, addr.UserID, addr.Label, addr.Street, addr.City, addr.State, addr.Pincode, addr.IsDefault)
		if err != nil {
			r.log.Error("Failed to insert address",
				zap.Error(err),
				zap.String("user_id", userID.String()),
			)
			return fmt.Errorf("insert address for %s: %w", userID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace addresses for %s: %w", userID.String(), err)
	}

	return nil
}
