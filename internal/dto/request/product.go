package request

type ProductRequest struct {
	ProductID       string   `json:"productId" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	Description     string   `json:"description" validate:"required,min=20"`
	OriginalPrice   float64  `json:"originalPrice" validate:"gte=0"`
	DiscountedPrice float64  `json:"discountedPrice" validate:"gte=0"`
	CoverImage      string   `json:"coverImage" validate:"required"`
	Images          []string `json:"images"`
	StockLeft       int      `json:"stockLeft" validate:"gte=0"`
}
