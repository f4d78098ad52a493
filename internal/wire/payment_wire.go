package wire

import (
	"nalam-grocery/internal/adaptor"
	"nalam-grocery/pkg/middleware"
	"nalam-grocery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT.Secret, log)

	r.With(auth).Post("/payment/create-order", paymentHandler.CreateOrder)
	r.With(auth).Post("/payment/verify", paymentHandler.Verify)
}
