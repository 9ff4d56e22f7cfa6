package store

import (
	"context"

	"agri_commerce/internal/domain"
)

// ListPayments returns every payment by ascending id
func (s *Store) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&payments).Error; err != nil {
		return nil, wrap("list payments", err)
	}
	return payments, nil
}

// GetPayment returns the payment with id
func (s *Store) GetPayment(ctx context.Context, id uint) (*domain.Payment, error) {
	var payment domain.Payment
	if err := s.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, wrap("get payment", err)
	}
	return &payment, nil
}

// CreatePayment inserts payment and fills in its id
func (s *Store) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	return wrap("create payment", s.db.WithContext(ctx).Create(payment).Error)
}

// UpdatePaymentStatus sets the status of the payment with id
func (s *Store) UpdatePaymentStatus(ctx context.Context, id uint, status string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := s.updateByID(ctx, "update payment", &payment, id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	return &payment, nil
}

// DeletePayment removes the payment with id
func (s *Store) DeletePayment(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.Payment{}, id)
	if res.Error != nil {
		return wrap("delete payment", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
