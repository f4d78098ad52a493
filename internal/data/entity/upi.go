package entity

import (
	"time"

	"github.com/google/uuid"
)

type UPILabel string

const (
	UPIPersonal UPILabel = "Personal"
	UPIBusiness UPILabel = "Business"
	UPIOther    UPILabel = "Other"
)

// UPI is a saved payment handle on a user's profile.
type UPI struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Label     UPILabel  `db:"label"`
	UPIID     string    `db:"upi_id"`
	IsDefault bool      `db:"is_default"`
	AddedAt   time.Time `db:"added_at"`
}
