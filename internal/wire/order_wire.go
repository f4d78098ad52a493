package wire

import (
	"nalam-grocery/internal/adaptor"
	"nalam-grocery/internal/data/repository"
	"nalam-grocery/pkg/middleware"
	"nalam-grocery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT.Secret, log)
	admin := middleware.Admin(repo.User, log)

	r.With(auth).Put("/orders/{id}", orderHandler.UpdateOrder)

	r.With(auth, admin).Get("/admin/orders", orderHandler.AdminListOrders)
	r.With(auth, admin).Put("/admin/orders/{id}", orderHandler.AdminUpdateOrder)
}
