package usecase

import (
	"context"
	"time"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/internal/data/repository"
	"nalam-grocery/internal/dto/request"
	"nalam-grocery/internal/dto/response"
	"nalam-grocery/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	CheckAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	email := normalizeEmail(req.Email)

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	if existing != nil {
		return nil, newError(ErrEmailTaken, "Email already in use")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.config.JWT.Secret,
		time.Duration(s.config.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	profile, err := assembleUserResponse(ctx, s.repo, user)
	if err != nil {
		return nil, err
	}

	return &response.AuthResponse{Token: token, User: *profile}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	email := normalizeEmail(req.Email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	// Unknown email and wrong password get the same answer.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", email))
		return nil, newError(ErrInvalidCredential, "Invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, newError(ErrInvalidCredential, "Invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.config.JWT.Secret,
		time.Duration(s.config.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	profile, err := assembleUserResponse(ctx, s.repo, user)
	if err != nil {
		return nil, err
	}

	return &response.AuthResponse{Token: token, User: *profile}, nil
}

func (s *authService) CheckAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for admin check", zap.Error(err), zap.String("user_id", userID.String()))
		return false, err
	}
	if user == nil {
		return false, newError(ErrNotFound, "User not found")
	}

	return user.Role == entity.RoleAdmin, nil
}
