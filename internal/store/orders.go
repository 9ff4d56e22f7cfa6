package store

import (
	"context"

	"agri_commerce/internal/domain"
)

// ListOrders returns every order in store order
func (s *Store) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := s.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, wrap("list orders", err)
	}
	return orders, nil
}

// CreateOrder inserts order and fills in its id. user_id is not checked here.
func (s *Store) CreateOrder(ctx context.Context, order *domain.Order) error {
	return wrap("create order", s.db.WithContext(ctx).Create(order).Error)
}

// UpdateOrderStatus sets the status of the order with id
func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, status string) (*domain.Order, error) {
	var order domain.Order
	if err := s.updateByID(ctx, "update order", &order, id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder removes the order with id and returns the removed row
func (s *Store) DeleteOrder(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	if err := s.deleteByID(ctx, "delete order", &order, id); err != nil {
		return nil, err
	}
	return &order, nil
}
