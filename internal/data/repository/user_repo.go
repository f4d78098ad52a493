package repository

import (
	"context"
	"fmt"
	"time"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailWithRecovery(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Recovery-state transitions. Each is a single conditional UPDATE so the
	// read-modify-write is atomic at the row; the boolean reports whether the
	// guard still matched.
	SetRecoveryOTP(ctx context.Context, id uuid.UUID, otp string, expiry time.Time) error
	ConsumeOTP(ctx context.Context, id uuid.UUID, otp, tokenHash string, tokenExpiry time.Time) (bool, error)
	ConsumeResetToken(ctx context.Context, id uuid.UUID, tokenHash, passwordHash string) (bool, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, phone, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, phone, role, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, phone, role, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

// FindByEmailWithRecovery is the only query that selects the recovery
// columns; every other lookup leaves them out of the scan entirely.
func (ur *userRepository) FindByEmailWithRecovery(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, phone, role,
		       reset_otp, reset_otp_expiry, reset_token, reset_token_expiry,
		       created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.ResetOTP,
		&user.ResetOTPExpiry,
		&user.ResetToken,
		&user.ResetTokenExpiry,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user with recovery fields",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user with recovery fields %s: %w", email, err)
	}

	return &user, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, phone = $3, role = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Phone,
		user.Role,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found or already deleted", user.ID.String())
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	ur.log.Info("User deleted", zap.String("id", id.String()))
	return nil
}

// SetRecoveryOTP stores a fresh OTP and clears any outstanding reset
// credential, superseding the previous recovery cycle in one statement.
func (ur *userRepository) SetRecoveryOTP(ctx context.Context, id uuid.UUID, otp string, expiry time.Time) error {
	query := `
		UPDATE users
		SET reset_otp = $2, reset_otp_expiry = $3,
		    reset_token = NULL, reset_token_expiry = NULL,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := ur.db.Exec(ctx, query, id, otp, expiry)
	if err != nil {
		ur.log.Error("Failed to store recovery OTP",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("store recovery OTP for %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

// ConsumeOTP clears the OTP and installs the hashed reset token, guarded by
// the OTP still matching. A false return means another request consumed or
// superseded the code first.
func (ur *userRepository) ConsumeOTP(ctx context.Context, id uuid.UUID, otp, tokenHash string, tokenExpiry time.Time) (bool, error) {
	query := `
		UPDATE users
		SET reset_otp = NULL, reset_otp_expiry = NULL,
		    reset_token = $3, reset_token_expiry = $4,
		    updated_at = NOW()
		WHERE id = $1 AND reset_otp = $2 AND deleted_at IS NULL
	`

	result, err := ur.db.Exec(ctx, query, id, otp, tokenHash, tokenExpiry)
	if err != nil {
		ur.log.Error("Failed to consume OTP",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return false, fmt.Errorf("consume OTP for %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// ConsumeResetToken commits the new password hash and clears the reset
// credential in one statement, so no window exists where the old token
// remains valid after a successful commit.
func (ur *userRepository) ConsumeResetToken(ctx context.Context, id uuid.UUID, tokenHash, passwordHash string) (bool, error) {
	query := `
		UPDATE users
		SET password = $3,
		    reset_token = NULL, reset_token_expiry = NULL,
		    updated_at = NOW()
		WHERE id = $1 AND reset_token = $2 AND deleted_at IS NULL
	`

	result, err := ur.db.Exec(ctx, query, id, tokenHash, passwordHash)
	if err != nil {
		ur.log.Error("Failed to consume reset token",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return false, fmt.Errorf("consume reset token for %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
