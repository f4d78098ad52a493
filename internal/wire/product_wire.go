package wire

import (
	"nalam-grocery/internal/adaptor"
	"nalam-grocery/internal/data/repository"
	"nalam-grocery/pkg/middleware"
	"nalam-grocery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/products", productHandler.List)

	// ==================== ADMIN ROUTES ====================
	auth := middleware.Auth(config.JWT.Secret, log)
	admin := middleware.Admin(repo.User, log)

	r.With(auth, admin).Post("/admin/products", productHandler.Create)
	r.With(auth, admin).Put("/admin/products/{id}", productHandler.Update)
	r.With(auth, admin).Delete("/admin/products/{id}", productHandler.Delete)
}
