package wire

import (
	"nalam-grocery/internal/adaptor"
	"nalam-grocery/pkg/middleware"
	"nalam-grocery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/forgot-password/send-otp", authHandler.SendOTP)
	r.Post("/auth/forgot-password/verify-otp", authHandler.VerifyOTP)
	r.Post("/auth/forgot-password/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Auth(config.JWT.Secret, log)).Get("/auth/check-admin", authHandler.CheckAdmin)
}
