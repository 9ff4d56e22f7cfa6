package store

import (
	"context"

	"agri_commerce/internal/domain"
)

// ListProducts returns every product in store order
func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, wrap("list products", err)
	}
	return products, nil
}

// CreateProduct inserts product and fills in its id
func (s *Store) CreateProduct(ctx context.Context, product *domain.Product) error {
	return wrap("create product", s.db.WithContext(ctx).Create(product).Error)
}

// UpdateProduct overwrites name, price and stock of the product with id
func (s *Store) UpdateProduct(ctx context.Context, id uint, name string, price float64, stock int) (*domain.Product, error) {
	var product domain.Product
	columns := map[string]any{"name": name, "price": price, "stock": stock}
	if err := s.updateByID(ctx, "update product", &product, id, columns); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the product with id and returns the removed row
func (s *Store) DeleteProduct(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := s.deleteByID(ctx, "delete product", &product, id); err != nil {
		return nil, err
	}
	return &product, nil
}
