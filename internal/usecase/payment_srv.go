package usecase

import (
	"context"
	"math"
	"time"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/internal/data/repository"
	"nalam-grocery/internal/dto/request"
	"nalam-grocery/internal/dto/response"
	"nalam-grocery/pkg/payment"
	"nalam-grocery/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentOrderRequest) (*response.PaymentOrderResponse, error)
	Verify(ctx context.Context, userID uuid.UUID, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error)
}

type paymentService struct {
	repo    *repository.Repository
	config  *utils.Config
	log     *zap.Logger
	gateway payment.Gateway
}

func NewPaymentService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
	gateway payment.Gateway,
) PaymentService {
	return &paymentService{
		repo:    repo,
		config:  config,
		log:     log,
		gateway: gateway,
	}
}

// CreateOrder opens a gateway order for the given rupee amount and records
// it so the later verification callback can be tied back to this user.
func (s *paymentService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentOrderRequest) (*response.PaymentOrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment order validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	amountPaise := int64(math.Round(req.Amount * 100))
	receipt := utils.GenerateReceiptID()

	gatewayOrder, err := s.gateway.CreateOrder(ctx, amountPaise, "INR", receipt)
	if err != nil {
		s.log.Error("Failed to create gateway order",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("amount", amountPaise))
		return nil, err
	}

	record := &entity.PaymentOrder{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:         userID,
		GatewayOrderID: gatewayOrder.ID,
		Amount:         gatewayOrder.Amount,
		Currency:       gatewayOrder.Currency,
		Receipt:        receipt,
		Status:         entity.PaymentCreated,
	}

	if err := s.repo.PaymentOrder.Create(ctx, record); err != nil {
		s.log.Error("Failed to record payment order",
			zap.Error(err),
			zap.String("gateway_order_id", gatewayOrder.ID))
		return nil, err
	}

	s.log.Info("Payment order created",
		zap.String("user_id", userID.String()),
		zap.String("gateway_order_id", gatewayOrder.ID),
		zap.Int64("amount", gatewayOrder.Amount))

	return &response.PaymentOrderResponse{
		OrderID:  gatewayOrder.ID,
		KeyID:    s.config.Razorpay.KeyID,
		Amount:   gatewayOrder.Amount,
		Currency: gatewayOrder.Currency,
	}, nil
}

// Verify checks the gateway signature, marks the payment order paid exactly
// once, places the purchased lines as orders, decrements stock and clears
// the bought products from the cart.
func (s *paymentService) Verify(ctx context.Context, userID uuid.UUID, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify payment validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, utils.FormatValidationErrors(errs))
	}

	if !payment.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.config.Razorpay.KeySecret) {
		s.log.Warn("Payment signature mismatch",
			zap.String("user_id", userID.String()),
			zap.String("gateway_order_id", req.RazorpayOrderID))
		return nil, newError(ErrPaymentSignature, "Payment verification failed")
	}

	record, err := s.repo.PaymentOrder.FindByGatewayOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		s.log.Error("Failed to find payment order",
			zap.Error(err),
			zap.String("gateway_order_id", req.RazorpayOrderID))
		return nil, err
	}
	if record == nil {
		return nil, newError(ErrNotFound, "Payment order not found")
	}
	if record.UserID != userID {
		return nil, newError(ErrForbidden, "Not your payment order")
	}

	// Guarded transition, a replayed callback finds the row already paid.
	ok, err := s.repo.PaymentOrder.MarkPaid(ctx, req.RazorpayOrderID)
	if err != nil {
		s.log.Error("Failed to mark payment order paid",
			zap.Error(err),
			zap.String("gateway_order_id", req.RazorpayOrderID))
		return nil, err
	}
	if !ok {
		return nil, newError(ErrValidation, "Payment already processed")
	}

	now := time.Now()
	orders := make([]*entity.Order, 0, len(req.Orders))
	boughtProducts := make([]uuid.UUID, 0, len(req.Orders))

	for _, line := range req.Orders {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, newError(ErrValidation, "Invalid product reference in order")
		}

		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			s.log.Error("Failed to find product for order", zap.Error(err), zap.String("product_id", productID.String()))
			return nil, err
		}
		if product == nil {
			return nil, newError(ErrNotFound, "Product not found")
		}

		decremented, err := s.repo.Product.DecrementStock(ctx, productID, line.Quantity)
		if err != nil {
			s.log.Error("Failed to decrement stock", zap.Error(err), zap.String("product_id", productID.String()))
			return nil, err
		}
		if !decremented {
			return nil, newError(ErrValidation, "Insufficient stock for "+product.Name)
		}

		orders = append(orders, &entity.Order{
			ID:         uuid.New(),
			UserID:     userID,
			ProductID:  productID,
			Quantity:   line.Quantity,
			TotalPrice: line.TotalPrice,
			Status:     entity.OrderPending,
			OrderedAt:  now,
		})
		boughtProducts = append(boughtProducts, productID)
	}

	if err := s.repo.Order.CreateBatch(ctx, orders); err != nil {
		s.log.Error("Failed to place orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("gateway_order_id", req.RazorpayOrderID))
		return nil, err
	}

	if err := s.repo.Cart.RemoveProducts(ctx, userID, boughtProducts); err != nil {
		// Orders are already placed; a leftover cart line is not worth
		// failing the whole purchase over.
		s.log.Error("Failed to clear bought products from cart",
			zap.Error(err),
			zap.String("user_id", userID.String()))
	}

	s.log.Info("Payment verified and orders placed",
		zap.String("user_id", userID.String()),
		zap.String("gateway_order_id", req.RazorpayOrderID),
		zap.Int("order_count", len(orders)))

	return &response.VerifyPaymentResponse{
		Message: "Payment verified successfully",
		Orders:  convertOrders(orders),
	}, nil
}
