package usecase

import (
	"context"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/internal/data/repository"
	"nalam-grocery/internal/dto/request"
	"nalam-grocery/internal/dto/response"
	"nalam-grocery/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	UpdateOrder(ctx context.Context, userID, orderID uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
	AdminListOrders(ctx context.Context, status string) ([]response.OrderResponse, error)
	AdminUpdateOrder(ctx context.Context, orderID uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log,
	}
}

// UpdateOrder lets a customer change the status of their own order,
// in practice cancelling it.
func (s *orderService) UpdateOrder(ctx context.Context, userID, orderID uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, err
	}
	if order == nil {
		return nil, newError(ErrNotFound, "Order not found")
	}
	if order.UserID != userID {
		return nil, newError(ErrForbidden, "Not your order")
	}

	updated, err := s.repo.Order.UpdateStatus(ctx, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		s.log.Error("Failed to update order status", zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, err
	}
	if updated == nil {
		return nil, newError(ErrNotFound, "Order not found")
	}

	s.log.Info("Order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", req.Status))

	resp := convertOrder(updated)
	return &resp, nil
}

func (s *orderService) AdminListOrders(ctx context.Context, status string) ([]response.OrderResponse, error) {
	if status != "" {
		switch entity.OrderStatus(status) {
		case entity.OrderPending, entity.OrderShipped, entity.OrderDelivered, entity.OrderCancelled:
		default:
			return nil, newError(ErrValidation, "Invalid order status filter")
		}
	}

	orders, err := s.repo.Order.ListAll(ctx, status)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("status", status))
		return nil, err
	}

	return convertOrders(orders), nil
}

func (s *orderService) AdminUpdateOrder(ctx context.Context, orderID uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin update order validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	updated, err := s.repo.Order.UpdateStatus(ctx, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		s.log.Error("Failed to update order status", zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, err
	}
	if updated == nil {
		return nil, newError(ErrNotFound, "Order not found")
	}

	s.log.Info("Order status updated by admin",
		zap.String("order_id", orderID.String()),
		zap.String("status", req.Status))

	resp := convertOrder(updated)
	return &resp, nil
}
