package usecase

import (
	"nalam-grocery/internal/data/repository"
	"nalam-grocery/pkg/mailer"
	"nalam-grocery/pkg/payment"
	"nalam-grocery/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Recovery RecoveryService
	User     UserService
	Product  ProductService
	Cart     CartService
	Order    OrderService
	Payment  PaymentService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
	mail mailer.Sender,
	gateway payment.Gateway,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Recovery: NewRecoveryService(repo, config, log, mail),
		User:     NewUserService(repo, log),
		Product:  NewProductService(repo, log),
		Cart:     NewCartService(repo, log),
		Order:    NewOrderService(repo, log),
		Payment:  NewPaymentService(repo, config, log, gateway),
	}
}
