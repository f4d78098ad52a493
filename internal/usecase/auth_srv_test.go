package usecase

import (
	"context"
	"errors"
	"testing"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/internal/dto/request"
	"nalam-grocery/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesAccount(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.repo, env.config, env.log)

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "alice@example.com", resp.User.Email) // normalized
	assert.Equal(t, "customer", resp.User.Role)
	assert.Empty(t, resp.User.Cart)

	claims, err := utils.ParseJWT(resp.Token, env.config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	env.seedUser("alice@example.com", "password123")
	svc := NewAuthService(env.repo, env.config, env.log)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice Again",
		Email:    "ALICE@example.com",
		Password: "password456",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmailTaken))
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.repo, env.config, env.log)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:  "Alice",
		Email: "not-an-email",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv()
	env.seedUser("alice@example.com", "password123")
	svc := NewAuthService(env.repo, env.config, env.log)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPasswordAndUnknownEmailMatch(t *testing.T) {
	env := newTestEnv()
	env.seedUser("alice@example.com", "password123")
	svc := NewAuthService(env.repo, env.config, env.log)
	ctx := context.Background()

	_, errWrong := svc.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	})
	_, errUnknown := svc.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	require.Error(t, errWrong)
	require.Error(t, errUnknown)
	assert.True(t, errors.Is(errWrong, ErrInvalidCredential))
	assert.True(t, errors.Is(errUnknown, ErrInvalidCredential))
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestCheckAdmin(t *testing.T) {
	env := newTestEnv()
	customer := env.seedUser("alice@example.com", "password123")
	admin := env.seedUser("admin@example.com", "password123")
	stored := env.users.stored(admin.ID)
	stored.Role = entity.RoleAdmin

	svc := NewAuthService(env.repo, env.config, env.log)
	ctx := context.Background()

	isAdmin, err := svc.CheckAdmin(ctx, customer.ID)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = svc.CheckAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}
