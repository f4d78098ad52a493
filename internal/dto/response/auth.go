package response

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CheckAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// VerifyOTPResponse returns the plaintext reset token exactly once.
type VerifyOTPResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}
