package request

type CreatePaymentOrderRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"` // rupees
}

type OrderLinePayload struct {
	ProductID  string  `json:"productId" validate:"required,uuid"`
	Quantity   int     `json:"quantity" validate:"required,gte=1"`
	TotalPrice float64 `json:"totalPrice" validate:"gte=0"`
}

// VerifyPaymentRequest carries the gateway callback fields plus the order
// lines to place once the signature checks out.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string             `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string             `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string             `json:"razorpay_signature" validate:"required"`
	Orders            []OrderLinePayload `json:"orders" validate:"required,min=1,dive"`
}
