package response

type PaymentOrderResponse struct {
	OrderID  string `json:"orderId"`
	KeyID    string `json:"keyId"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
}

type VerifyPaymentResponse struct {
	Message string          `json:"message"`
	Orders  []OrderResponse `json:"orders"`
}
