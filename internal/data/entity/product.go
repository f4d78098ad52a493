package entity

type Product struct {
	Base
	ProductID       string   `db:"product_id"` // merchant SKU, unique
	Name            string   `db:"name"`
	Category        string   `db:"category"`
	Description     string   `db:"description"`
	OriginalPrice   float64  `db:"original_price"`
	DiscountedPrice float64  `db:"discounted_price"`
	CoverImage      string   `db:"cover_image"`
	Images          []string `db:"images"`
	StockLeft       int      `db:"stock_left"`
}
