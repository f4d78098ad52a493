package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one product line in a user's cart. One line per product;
// updates reconcile the quantity instead of appending.
type CartItem struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
	AddedAt   time.Time `db:"added_at"`
}
