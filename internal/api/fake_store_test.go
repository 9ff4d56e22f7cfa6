package api

import (
	"context"
	"sort"
	"sync"

	"agri_commerce/internal/domain"
)

// fakeStore is an in-memory Store. It counts every call so tests can assert
// that rejected requests never reach the store.
type fakeStore struct {
	mu       sync.Mutex
	nextID   uint
	calls    int
	failWith error // returned by every call when set
	pingErr  error
	users    map[uint]domain.User
	products map[uint]domain.Product
	orders   map[uint]domain.Order
	payments map[uint]domain.Payment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uint]domain.User),
		products: make(map[uint]domain.Product),
		orders:   make(map[uint]domain.Order),
		payments: make(map[uint]domain.Payment),
	}
}

// begin locks the store and records the call; callers unlock
func (f *fakeStore) begin() error {
	f.mu.Lock()
	f.calls++
	return f.failWith
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func sortedValues[T any](m map[uint]T) []T {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(m))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) ListUsers(context.Context) ([]domain.User, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return sortedValues(f.users), nil
}

func (f *fakeStore) EmailExists(_ context.Context, email string) (bool, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return false, err
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateUser(_ context.Context, user *domain.User) error {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	user.ID = f.id()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeStore) UpdateUser(_ context.Context, id uint, name, email string) (*domain.User, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Name, u.Email = name, email
	f.users[id] = u
	return &u, nil
}

func (f *fakeStore) DeleteUser(_ context.Context, id uint) (*domain.User, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.users, id)
	return &u, nil
}

func (f *fakeStore) ListProducts(context.Context) ([]domain.Product, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return sortedValues(f.products), nil
}

func (f *fakeStore) CreateProduct(_ context.Context, product *domain.Product) error {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return err
	}
	product.ID = f.id()
	f.products[product.ID] = *product
	return nil
}

func (f *fakeStore) UpdateProduct(_ context.Context, id uint, name string, price float64, stock int) (*domain.Product, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Name, p.Price, p.Stock = name, price, stock
	f.products[id] = p
	return &p, nil
}

func (f *fakeStore) DeleteProduct(_ context.Context, id uint) (*domain.Product, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.products, id)
	return &p, nil
}

func (f *fakeStore) ListOrders(context.Context) ([]domain.Order, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return sortedValues(f.orders), nil
}

func (f *fakeStore) CreateOrder(_ context.Context, order *domain.Order) error {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return err
	}
	order.ID = f.id()
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeStore) UpdateOrderStatus(_ context.Context, id uint, status string) (*domain.Order, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Status = status
	f.orders[id] = o
	return &o, nil
}

func (f *fakeStore) DeleteOrder(_ context.Context, id uint) (*domain.Order, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.orders, id)
	return &o, nil
}

func (f *fakeStore) ListPayments(context.Context) ([]domain.Payment, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return sortedValues(f.payments), nil
}

func (f *fakeStore) GetPayment(_ context.Context, id uint) (*domain.Payment, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	p, ok := f.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) CreatePayment(_ context.Context, payment *domain.Payment) error {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return err
	}
	payment.ID = f.id()
	f.payments[payment.ID] = *payment
	return nil
}

func (f *fakeStore) UpdatePaymentStatus(_ context.Context, id uint, status string) (*domain.Payment, error) {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	p, ok := f.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Status = status
	f.payments[id] = p
	return &p, nil
}

func (f *fakeStore) DeletePayment(_ context.Context, id uint) error {
	err := f.begin()
	defer f.mu.Unlock()
	if err != nil {
		return err
	}
	if _, ok := f.payments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.payments, id)
	return nil
}
