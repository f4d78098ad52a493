package response

import "time"

type AddressResponse struct {
	ID        string  `json:"_id"`
	Label     string  `json:"label"`
	Street    *string `json:"street,omitempty"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Pincode   string  `json:"pincode"`
	IsDefault bool    `json:"isDefault"`
}

type UPIResponse struct {
	ID        string    `json:"_id"`
	Label     string    `json:"label"`
	UPIID     string    `json:"upiId"`
	IsDefault bool      `json:"isDefault"`
	AddedAt   time.Time `json:"addedAt"`
}

type PaymentProfileResponse struct {
	UPIIDs []UPIResponse `json:"upiIds"`
}

type CartItemResponse struct {
	ID       string    `json:"_id"`
	Product  string    `json:"product"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

type UserResponse struct {
	ID        string                 `json:"_id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     *string                `json:"phone,omitempty"`
	Role      string                 `json:"role"`
	Addresses []AddressResponse      `json:"addresses"`
	Cart      []CartItemResponse     `json:"cart"`
	Orders    []OrderResponse        `json:"orders"`
	Payment   PaymentProfileResponse `json:"payment"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

type UpdateUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type UpdateCartResponse struct {
	Message string             `json:"message"`
	Cart    []CartItemResponse `json:"cart"`
}
