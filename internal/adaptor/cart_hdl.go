package adaptor

import (
	"encoding/json"
	"net/http"

	"nalam-grocery/internal/dto/request"
	"nalam-grocery/internal/dto/response"
	"nalam-grocery/internal/usecase"
	"nalam-grocery/pkg/utils"

	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// UpdateCart handles PUT /user/cart
func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	cart, err := h.service.UpdateCart(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update cart")
		return
	}

	utils.ResponseSuccess(w, response.UpdateCartResponse{
		Message: "Cart updated",
		Cart:    cart,
	})
}
