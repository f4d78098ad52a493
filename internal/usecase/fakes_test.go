package usecase

import (
	"context"
	"sync"
	"time"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/internal/data/repository"
	"nalam-grocery/pkg/payment"
	"nalam-grocery/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. Guard semantics mirror the SQL: conditional
// transitions succeed only while the stored state still matches.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	clone := *user
	clone.ResetOTP, clone.ResetOTPExpiry = nil, nil
	clone.ResetToken, clone.ResetTokenExpiry = nil, nil
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email && user.DeletedAt == nil {
			clone := *user
			clone.ResetOTP, clone.ResetOTPExpiry = nil, nil
			clone.ResetToken, clone.ResetTokenExpiry = nil, nil
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmailWithRecovery(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email && user.DeletedAt == nil {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return nil
	}
	stored.Name = user.Name
	stored.Phone = user.Phone
	stored.Role = user.Role
	stored.UpdatedAt = user.UpdatedAt
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		now := time.Now()
		user.DeletedAt = &now
	}
	return nil
}

func (r *fakeUserRepo) SetRecoveryOTP(_ context.Context, id uuid.UUID, otp string, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil
	}
	user.ResetOTP = &otp
	user.ResetOTPExpiry = &expiry
	user.ResetToken, user.ResetTokenExpiry = nil, nil
	return nil
}

func (r *fakeUserRepo) ConsumeOTP(_ context.Context, id uuid.UUID, otp, tokenHash string, tokenExpiry time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok || user.ResetOTP == nil || *user.ResetOTP != otp {
		return false, nil
	}
	user.ResetOTP, user.ResetOTPExpiry = nil, nil
	user.ResetToken = &tokenHash
	user.ResetTokenExpiry = &tokenExpiry
	return true, nil
}

func (r *fakeUserRepo) ConsumeResetToken(_ context.Context, id uuid.UUID, tokenHash, passwordHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok || user.ResetToken == nil || *user.ResetToken != tokenHash {
		return false, nil
	}
	user.PasswordHash = passwordHash
	user.ResetOTP, user.ResetOTPExpiry = nil, nil
	user.ResetToken, user.ResetTokenExpiry = nil, nil
	return true, nil
}

// stored returns the raw record, recovery fields included.
func (r *fakeUserRepo) stored(id uuid.UUID) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id]
}

type fakeAddressRepo struct {
	byUser map[uuid.UUID][]*entity.Address
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{byUser: make(map[uuid.UUID][]*entity.Address)}
}

func (r *fakeAddressRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	return r.byUser[userID], nil
}

func (r *fakeAddressRepo) ReplaceForUser(_ context.Context, userID uuid.UUID, addresses []*entity.Address) error {
	r.byUser[userID] = addresses
	return nil
}

type fakeUPIRepo struct {
	byUser map[uuid.UUID][]*entity.UPI
}

func newFakeUPIRepo() *fakeUPIRepo {
	return &fakeUPIRepo{byUser: make(map[uuid.UUID][]*entity.UPI)}
}

func (r *fakeUPIRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.UPI, error) {
	return r.byUser[userID], nil
}

func (r *fakeUPIRepo) ReplaceForUser(_ context.Context, userID uuid.UUID, upis []*entity.UPI) error {
	r.byUser[userID] = upis
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok || product.DeletedAt != nil {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, product := range r.products {
		if product.DeletedAt == nil {
			clone := *product
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if product, ok := r.products[id]; ok {
		now := time.Now()
		product.DeletedAt = &now
	}
	return nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, id uuid.UUID, quantity int) (bool, error) {
	product, ok := r.products[id]
	if !ok || product.DeletedAt != nil || product.StockLeft < quantity {
		return false, nil
	}
	product.StockLeft -= quantity
	return true, nil
}

type fakeCartRepo struct {
	byUser map[uuid.UUID]map[uuid.UUID]*entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{byUser: make(map[uuid.UUID]map[uuid.UUID]*entity.CartItem)}
}

func (r *fakeCartRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, item := range r.byUser[userID] {
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeCartRepo) Upsert(_ context.Context, item *entity.CartItem) error {
	lines, ok := r.byUser[item.UserID]
	if !ok {
		lines = make(map[uuid.UUID]*entity.CartItem)
		r.byUser[item.UserID] = lines
	}
	if existing, ok := lines[item.ProductID]; ok {
		existing.Quantity = item.Quantity
		return nil
	}
	clone := *item
	lines[item.ProductID] = &clone
	return nil
}

func (r *fakeCartRepo) Remove(_ context.Context, userID, productID uuid.UUID) error {
	delete(r.byUser[userID], productID)
	return nil
}

func (r *fakeCartRepo) RemoveProducts(_ context.Context, userID uuid.UUID, productIDs []uuid.UUID) error {
	for _, id := range productIDs {
		delete(r.byUser[userID], id)
	}
	return nil
}

func (r *fakeCartRepo) ReplaceForUser(_ context.Context, userID uuid.UUID, items []*entity.CartItem) error {
	lines := make(map[uuid.UUID]*entity.CartItem, len(items))
	for _, item := range items {
		clone := *item
		lines[item.ProductID] = &clone
	}
	r.byUser[userID] = lines
	return nil
}

func (r *fakeCartRepo) ClearForUser(_ context.Context, userID uuid.UUID) error {
	delete(r.byUser, userID)
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (r *fakeOrderRepo) CreateBatch(_ context.Context, orders []*entity.Order) error {
	for _, order := range orders {
		clone := *order
		r.orders = append(r.orders, &clone)
	}
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.ID == id {
			clone := *order
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			clone := *order
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context, status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		if status == "" || string(order.Status) == status {
			clone := *order
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.ID == id {
			order.Status = status
			clone := *order
			return &clone, nil
		}
	}
	return nil, nil
}

type fakePaymentOrderRepo struct {
	byGatewayID map[string]*entity.PaymentOrder
}

func newFakePaymentOrderRepo() *fakePaymentOrderRepo {
	return &fakePaymentOrderRepo{byGatewayID: make(map[string]*entity.PaymentOrder)}
}

func (r *fakePaymentOrderRepo) Create(_ context.Context, order *entity.PaymentOrder) error {
	clone := *order
	r.byGatewayID[order.GatewayOrderID] = &clone
	return nil
}

func (r *fakePaymentOrderRepo) FindByGatewayOrderID(_ context.Context, gatewayOrderID string) (*entity.PaymentOrder, error) {
	order, ok := r.byGatewayID[gatewayOrderID]
	if !ok {
		return nil, nil
	}
	clone := *order
	return &clone, nil
}

func (r *fakePaymentOrderRepo) MarkPaid(_ context.Context, gatewayOrderID string) (bool, error) {
	order, ok := r.byGatewayID[gatewayOrderID]
	if !ok || order.Status != entity.PaymentCreated {
		return false, nil
	}
	order.Status = entity.PaymentPaid
	return true, nil
}

// fakeMailer records deliveries instead of dialing SMTP.
type fakeMailer struct {
	mu    sync.Mutex
	sends []fakeMail
	fail  bool
}

type fakeMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return context.DeadlineExceeded
	}
	m.sends = append(m.sends, fakeMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func (m *fakeMailer) sent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sends)
}

// fakeGateway hands out deterministic order IDs.
type fakeGateway struct {
	nextID string
	orders []*payment.Order
}

func (g *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*payment.Order, error) {
	id := g.nextID
	if id == "" {
		id = "order_test_" + uuid.NewString()[:8]
	}
	order := &payment.Order{ID: id, Amount: amount, Currency: currency}
	g.orders = append(g.orders, order)
	return order, nil
}

type testEnv struct {
	repo    *repository.Repository
	users   *fakeUserRepo
	product *fakeProductRepo
	cart    *fakeCartRepo
	order   *fakeOrderRepo
	payment *fakePaymentOrderRepo
	mail    *fakeMailer
	gateway *fakeGateway
	config  *utils.Config
	log     *zap.Logger
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	products := newFakeProductRepo()
	cart := newFakeCartRepo()
	orders := newFakeOrderRepo()
	payments := newFakePaymentOrderRepo()

	return &testEnv{
		repo: &repository.Repository{
			User:         users,
			Address:      newFakeAddressRepo(),
			UPI:          newFakeUPIRepo(),
			Product:      products,
			Cart:         cart,
			Order:        orders,
			PaymentOrder: payments,
		},
		users:   users,
		product: products,
		cart:    cart,
		order:   orders,
		payment: payments,
		mail:    &fakeMailer{},
		gateway: &fakeGateway{},
		config: &utils.Config{
			JWT: utils.JWTConfig{
				Secret:      "test-secret",
				ExpiryHours: 168,
			},
			OTP: utils.OTPConfig{
				ExpiryMinutes:      5,
				ResetExpiryMinutes: 60,
			},
			Razorpay: utils.RazorpayConfig{
				KeyID:     "rzp_test_key",
				KeySecret: "rzp_test_secret",
			},
		},
		log: zap.NewNop(),
	}
}

func (e *testEnv) seedUser(email, password string) *entity.User {
	hash, _ := utils.HashPassword(password)
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
	}
	e.users.Create(context.Background(), user)
	return user
}

func (e *testEnv) seedProduct(name string, price float64, stock int) *entity.Product {
	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID:       "SKU-" + uuid.NewString()[:8],
		Name:            name,
		Category:        "Staples",
		Description:     "A reliably fresh pantry staple for everyday cooking.",
		OriginalPrice:   price,
		DiscountedPrice: price,
		CoverImage:      "https://img.example.com/" + name + ".jpg",
		StockLeft:       stock,
	}
	e.product.Create(context.Background(), product)
	return product
}
