package wire

import (
	"nalam-grocery/internal/adaptor"
	"nalam-grocery/pkg/middleware"
	"nalam-grocery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	cartHandler *adaptor.CartHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT.Secret, log)

	r.With(auth).Get("/user", userHandler.GetProfile)
	r.With(auth).Put("/user", userHandler.UpdateProfile)
	r.With(auth).Delete("/user", userHandler.DeleteAccount)
	r.With(auth).Put("/user/cart", cartHandler.UpdateCart)
}
