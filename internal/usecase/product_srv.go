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

type ProductService interface {
	List(ctx context.Context) ([]response.ProductResponse, error)
	Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log,
	}
}

func (s *productService) List(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, err
	}

	resp := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, convertProduct(product))
	}

	return resp, nil
}

func (s *productService) Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID:       req.ProductID,
		Name:            req.Name,
		Category:        req.Category,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		CoverImage:      req.CoverImage,
		Images:          req.Images,
		StockLeft:       req.StockLeft,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("sku", req.ProductID))
		return nil, err
	}

	s.log.Info("Product created",
		zap.String("id", product.ID.String()),
		zap.String("sku", product.ProductID))

	resp := convertProduct(product)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("id", id.String()))
		return nil, err
	}
	if product == nil {
		return nil, newError(ErrNotFound, "Product not found")
	}

	product.ProductID = req.ProductID
	product.Name = req.Name
	product.Category = req.Category
	product.Description = req.Description
	product.OriginalPrice = req.OriginalPrice
	product.DiscountedPrice = req.DiscountedPrice
	product.CoverImage = req.CoverImage
	product.Images = req.Images
	product.StockLeft = req.StockLeft
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("id", id.String()))
		return nil, err
	}

	resp := convertProduct(product)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("id", id.String()))
		return err
	}
	if product == nil {
		return newError(ErrNotFound, "Product not found")
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("id", id.String()))
		return err
	}

	s.log.Info("Product deleted", zap.String("id", id.String()))
	return nil
}

func convertProduct(product *entity.Product) response.ProductResponse {
	images := product.Images
	if images == nil {
		images = []string{}
	}
	return response.ProductResponse{
		ID:              product.ID.String(),
		ProductID:       product.ProductID,
		Name:            product.Name,
		Category:        product.Category,
		Description:     product.Description,
		OriginalPrice:   product.OriginalPrice,
		DiscountedPrice: product.DiscountedPrice,
		CoverImage:      product.CoverImage,
		Images:          images,
		StockLeft:       product.StockLeft,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}
