package entity

import "github.com/google/uuid"

type AddressLabel string

const (
	AddressHome  AddressLabel = "Home"
	AddressWork  AddressLabel = "Work"
	AddressOther AddressLabel = "Other"
)

type Address struct {
	ID        uuid.UUID    `db:"id"`
	UserID    uuid.UUID    `db:"user_id"`
	Label     AddressLabel `db:"label"`
	Street    *string      `db:"street"`
	City      string       `db:"city"`
	State     string       `db:"state"`
	Pincode   string       `db:"pincode"`
	IsDefault bool         `db:"is_default"`
}
