package adaptor

import (
	"encoding/json"
	"net/http"

	"nalam-grocery/internal/dto/request"
	"nalam-grocery/internal/dto/response"
	"nalam-grocery/internal/usecase"
	"nalam-grocery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// UpdateOrder handles PUT /orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID")
		return
	}

	var req request.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	order, err := h.service.UpdateOrder(r.Context(), userID, orderID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order")
		return
	}

	utils.ResponseSuccess(w, response.UpdateOrderResponse{
		Message: "Order updated",
		Order:   *order,
	})
}

// AdminListOrders handles GET /admin/orders (admin only)
func (h *OrderHandler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	orders, err := h.service.AdminListOrders(r.Context(), status)
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, orders)
}

// AdminUpdateOrder handles PUT /admin/orders/{id} (admin only)
func (h *OrderHandler) AdminUpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID")
		return
	}

	var req request.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	order, err := h.service.AdminUpdateOrder(r.Context(), orderID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order")
		return
	}

	utils.ResponseSuccess(w, response.UpdateOrderResponse{
		Message: "Order updated",
		Order:   *order,
	})
}
