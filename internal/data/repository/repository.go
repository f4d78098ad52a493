package repository

import (
	"nalam-grocery/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Address      AddressRepository
	UPI          UPIRepository
	Product      ProductRepository
	Cart         CartRepository
	Order        OrderRepository
	PaymentOrder PaymentOrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Address:      NewAddressRepository(db, log),
		UPI:          NewUPIRepository(db, log),
		Product:      NewProductRepository(db, log),
		Cart:         NewCartRepository(db, log),
		Order:        NewOrderRepository(db, log),
		PaymentOrder: NewPaymentOrderRepository(db, log),
	}
}
