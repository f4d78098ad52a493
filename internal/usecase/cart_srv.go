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

type CartService interface {
	UpdateCart(ctx context.Context, userID uuid.UUID, req *request.UpdateCartRequest) ([]response.CartItemResponse, error)
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log,
	}
}

// UpdateCart reconciles one line against the stored cart. The presented
// quantity replaces the stored one; zero or negative removes the line.
// The full cart is returned either way.
func (s *cartService) UpdateCart(ctx context.Context, userID uuid.UUID, req *request.UpdateCartRequest) ([]response.CartItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update cart validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, newError(ErrValidation, "Invalid product reference")
	}

	if req.Quantity <= 0 {
		if err := s.repo.Cart.Remove(ctx, userID, productID); err != nil {
			s.log.Error("Failed to remove cart line",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.String("product_id", productID.String()))
			return nil, err
		}
	} else {
		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			s.log.Error("Failed to find product for cart", zap.Error(err), zap.String("product_id", productID.String()))
			return nil, err
		}
		if product == nil {
			return nil, newError(ErrNotFound, "Product not found")
		}

		item := &entity.CartItem{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  req.Quantity,
			AddedAt:   time.Now(),
		}
		if err := s.repo.Cart.Upsert(ctx, item); err != nil {
			s.log.Error("Failed to upsert cart line",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.String("product_id", productID.String()))
			return nil, err
		}
	}

	cart, err := s.repo.Cart.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	return convertCartItems(cart), nil
}
