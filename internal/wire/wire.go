package wire

import (
	"net/http"

	"nalam-grocery/internal/adaptor"
	"nalam-grocery/internal/data/repository"
	"nalam-grocery/internal/usecase"
	"nalam-grocery/pkg/mailer"
	"nalam-grocery/pkg/middleware"
	"nalam-grocery/pkg/payment"
	"nalam-grocery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
	mail mailer.Sender,
	gateway payment.Gateway,
) *App {
	service := usecase.NewService(repo, config, logger, mail, gateway)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, config, logger)
	wireUser(r, handler.User, handler.Cart, config, logger)
	wireProduct(r, handler.Product, repo, config, logger)
	wireOrder(r, handler.Order, repo, config, logger)
	wirePayment(r, handler.Payment, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
