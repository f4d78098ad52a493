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

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}
	if user == nil {
		return nil, newError(ErrNotFound, "User not found")
	}

	return assembleUserResponse(ctx, s.repo, user)
}

// UpdateProfile applies a partial update: name and phone change in place,
// while addresses, UPI handles and the cart are replaced wholesale when the
// request carries them.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}
	if user == nil {
		return nil, newError(ErrNotFound, "User not found")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	if req.Addresses != nil {
		addresses := make([]*entity.Address, 0, len(*req.Addresses))
		for _, payload := range *req.Addresses {
			addresses = append(addresses, &entity.Address{
				ID:        uuid.New(),
				UserID:    userID,
				Label:     entity.AddressLabel(payload.Label),
				Street:    payload.Street,
				City:      payload.City,
				State:     payload.State,
				Pincode:   payload.Pincode,
				IsDefault: payload.IsDefault,
			})
		}

		if err := s.repo.Address.ReplaceForUser(ctx, userID, addresses); err != nil {
			s.log.Error("Failed to replace addresses", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, err
		}
	}

	if req.Payment != nil {
		upis := make([]*entity.UPI, 0, len(req.Payment.UPIIDs))
		for _, payload := range req.Payment.UPIIDs {
			label := entity.UPILabel(payload.Label)
			if label == "" {
				label = entity.UPIPersonal
			}
			upis = append(upis, &entity.UPI{
				ID:        uuid.New(),
				UserID:    userID,
				Label:     label,
				UPIID:     payload.UPIID,
				IsDefault: payload.IsDefault,
				AddedAt:   time.Now(),
			})
		}

		if err := s.repo.UPI.ReplaceForUser(ctx, userID, upis); err != nil {
			s.log.Error("Failed to replace UPI handles", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, err
		}
	}

	if req.Cart != nil {
		items := make([]*entity.CartItem, 0, len(*req.Cart))
		for _, payload := range *req.Cart {
			productID, err := uuid.Parse(payload.ProductID)
			if err != nil {
				return nil, newError(ErrValidation, "Invalid product reference in cart")
			}
			items = append(items, &entity.CartItem{
				ID:        uuid.New(),
				UserID:    userID,
				ProductID: productID,
				Quantity:  payload.Quantity,
				AddedAt:   time.Now(),
			})
		}

		if err := s.repo.Cart.ReplaceForUser(ctx, userID, items); err != nil {
			s.log.Error("Failed to replace cart", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, err
		}
	}

	s.log.Info("User profile updated", zap.String("user_id", userID.String()))

	return assembleUserResponse(ctx, s.repo, user)
}

func (s *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return err
	}
	if user == nil {
		return newError(ErrNotFound, "User not found")
	}

	if err := s.repo.Cart.ClearForUser(ctx, userID); err != nil {
		s.log.Error("Failed to clear cart on delete", zap.Error(err), zap.String("user_id", userID.String()))
		return err
	}

	if err := s.repo.User.Delete(ctx, userID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID.String()))
		return err
	}

	return nil
}

// ==================== CONVERSION HELPERS ====================

// assembleUserResponse builds the full profile document the API returns:
// account fields plus addresses, cart, orders and payment handles. The
// password hash and recovery fields are never part of it.
func assembleUserResponse(ctx context.Context, repo *repository.Repository, user *entity.User) (*response.UserResponse, error) {
	addresses, err := repo.Address.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	upis, err := repo.UPI.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	cart, err := repo.Cart.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	orders, err := repo.Order.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp := &response.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
		Addresses: make([]response.AddressResponse, 0, len(addresses)),
		Cart:      convertCartItems(cart),
		Orders:    convertOrders(orders),
		Payment:   response.PaymentProfileResponse{UPIIDs: make([]response.UPIResponse, 0, len(upis))},
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	for _, addr := range addresses {
		resp.Addresses = append(resp.Addresses, response.AddressResponse{
			ID:        addr.ID.String(),
			Label:     string(addr.Label),
			Street:    addr.Street,
			City:      addr.City,
			State:     addr.State,
			Pincode:   addr.Pincode,
			IsDefault: addr.IsDefault,
		})
	}

	for _, upi := range upis {
		resp.Payment.UPIIDs = append(resp.Payment.UPIIDs, response.UPIResponse{
			ID:        upi.ID.String(),
			Label:     string(upi.Label),
			UPIID:     upi.UPIID,
			IsDefault: upi.IsDefault,
			AddedAt:   upi.AddedAt,
		})
	}

	return resp, nil
}

func convertCartItems(items []*entity.CartItem) []response.CartItemResponse {
	resp := make([]response.CartItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, response.CartItemResponse{
			ID:       item.ID.String(),
			Product:  item.ProductID.String(),
			Quantity: item.Quantity,
			AddedAt:  item.AddedAt,
		})
	}
	return resp
}

func convertOrders(orders []*entity.Order) []response.OrderResponse {
	resp := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, convertOrder(order))
	}
	return resp
}

func convertOrder(order *entity.Order) response.OrderResponse {
	return response.OrderResponse{
		ID:         order.ID.String(),
		Product:    order.ProductID.String(),
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		OrderedAt:  order.OrderedAt,
	}
}
