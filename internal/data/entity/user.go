package entity

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User is the account record. The four recovery fields are nullable and
// hidden from every query except the recovery lookups; each new recovery
// cycle overwrites them, so at most one OTP and one reset credential can be
// outstanding per account.
type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`

	// Recovery state, populated only by FindByEmailWithRecovery.
	ResetOTP         *string    `db:"reset_otp"`
	ResetOTPExpiry   *time.Time `db:"reset_otp_expiry"`
	ResetToken       *string    `db:"reset_token"` // SHA-256 hash, never plaintext
	ResetTokenExpiry *time.Time `db:"reset_token_expiry"`
}
