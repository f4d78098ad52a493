package request

// UpdateCartRequest reconciles one cart line: the presented quantity
// becomes the stored quantity, zero or less removes the line.
type UpdateCartRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity"`
}
