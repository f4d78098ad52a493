package request

type AddressPayload struct {
	Label     string  `json:"label" validate:"required,oneof=Home Work Other"`
	Street    *string `json:"street"`
	City      string  `json:"city" validate:"required"`
	State     string  `json:"state" validate:"required"`
	Pincode   string  `json:"pincode" validate:"required"`
	IsDefault bool    `json:"isDefault"`
}

type UPIPayload struct {
	Label     string `json:"label" validate:"omitempty,oneof=Personal Business Other"`
	UPIID     string `json:"upiId" validate:"required"`
	IsDefault bool   `json:"isDefault"`
}

type PaymentPayload struct {
	UPIIDs []UPIPayload `json:"upiIds" validate:"dive"`
}

type CartItemPayload struct {
	ProductID string `json:"product" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateUserRequest carries a partial profile update; nil fields are left
// untouched, present slices replace the stored set wholesale.
type UpdateUserRequest struct {
	Name      *string            `json:"name"`
	Phone     *string            `json:"phone"`
	Addresses *[]AddressPayload  `json:"addresses" validate:"omitempty,dive"`
	Payment   *PaymentPayload    `json:"payment"`
	Cart      *[]CartItemPayload `json:"cart" validate:"omitempty,dive"`
}
