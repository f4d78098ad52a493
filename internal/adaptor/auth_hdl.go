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

type AuthHandler struct {
	service  usecase.AuthService
	recovery usecase.RecoveryService
	log      *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, recovery usecase.RecoveryService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		recovery: recovery,
		log:      log,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// CheckAdmin handles GET /auth/check-admin
func (h *AuthHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	isAdmin, err := h.service.CheckAdmin(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "check admin")
		return
	}

	utils.ResponseSuccess(w, response.CheckAdminResponse{IsAdmin: isAdmin})
}

// SendOTP handles POST /auth/forgot-password/send-otp. The answer is the
// same whether or not the email belongs to an account.
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	if err := h.recovery.SendOTP(r.Context(), req.Email); err != nil {
		handleServiceError(w, h.log, err, "send otp")
		return
	}

	utils.ResponseMessage(w, "If email exists, OTP will be sent")
}

// VerifyOTP handles POST /auth/forgot-password/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	resetToken, err := h.recovery.VerifyOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		handleServiceError(w, h.log, err, "verify otp")
		return
	}

	utils.ResponseSuccess(w, response.VerifyOTPResponse{
		Message:    "OTP verified",
		ResetToken: resetToken,
	})
}

// ResetPassword handles POST /auth/forgot-password/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.recovery.ResetPassword(r.Context(), req.Email, req.ResetToken, req.NewPassword); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseMessage(w, "Password reset successful")
}
