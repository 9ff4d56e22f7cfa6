package api

import (
	"agri_commerce/internal/domain" // Importing domain models
	"agri_commerce/internal/utils"  // Response cache
	"context"                       // Store operations
	"net/http"                      // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// ProductStore is the data access needed by the product handlers
type ProductStore interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, id uint, name string, price float64, stock int) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) (*domain.Product, error)
}

// CreateProductRequest is the body of POST /api/products.
// Price and stock are pointers so that zero is accepted but absence is not.
type CreateProductRequest struct {
	Name  string   `json:"name" binding:"required,notblank"`
	Price *float64 `json:"price" binding:"required"`
	Stock *int     `json:"stock" binding:"required"`
}

// UpdateProductRequest is the body of PUT /api/products
type UpdateProductRequest struct {
	ID    uint     `json:"id" binding:"required"`
	Name  string   `json:"name" binding:"required,notblank"`
	Price *float64 `json:"price" binding:"required"`
	Stock *int     `json:"stock" binding:"required"`
}

// ListProductsHandler returns all products
func ListProductsHandler(s ProductStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveList(c, cache, utils.ProductsListKey, "products", s.ListProducts)
	}
}

// CreateProductHandler inserts a product
func CreateProductHandler(s ProductStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		product := domain.Product{Name: req.Name, Price: *req.Price, Stock: *req.Stock}
		if err := s.CreateProduct(c.Request.Context(), &product); err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{"product_id": product.ID, "type": "create_product"}).Info("Product created")
		invalidate(c, cache, utils.ProductsListKey)
		c.JSON(http.StatusCreated, gin.H{"message": MsgProductCreated, "product": product})
	}
}

// UpdateProductHandler overwrites name, price and stock of a product
func UpdateProductHandler(s ProductStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductRequest
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		product, err := s.UpdateProduct(c.Request.Context(), req.ID, req.Name, *req.Price, *req.Stock)
		if err != nil {
			respondError(c, translate(err, MsgProductNotFound))
			return
		}
		logrus.WithFields(logrus.Fields{"product_id": product.ID, "type": "update_product"}).Info("Product updated")
		invalidate(c, cache, utils.ProductsListKey)
		c.JSON(http.StatusOK, gin.H{"message": MsgProductUpdated, "product": product})
	}
}

// DeleteProductHandler removes a product and returns the removed row
func DeleteProductHandler(s ProductStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteRequest
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		product, err := s.DeleteProduct(c.Request.Context(), req.ID)
		if err != nil {
			respondError(c, translate(err, MsgProductNotFound))
			return
		}
		logrus.WithFields(logrus.Fields{"product_id": product.ID, "type": "delete_product"}).Info("Product deleted")
		invalidate(c, cache, utils.ProductsListKey)
		c.JSON(http.StatusOK, gin.H{"message": MsgProductDeleted, "product": product})
	}
}
