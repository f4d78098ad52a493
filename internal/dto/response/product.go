package response

import "time"

type ProductResponse struct {
	ID              string    `json:"_id"`
	ProductID       string    `json:"productId"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	OriginalPrice   float64   `json:"originalPrice"`
	DiscountedPrice float64   `json:"discountedPrice"`
	CoverImage      string    `json:"coverImage"`
	Images          []string  `json:"images"`
	StockLeft       int       `json:"stockLeft"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
