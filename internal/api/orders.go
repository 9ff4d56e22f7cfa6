package api

import (
	"agri_commerce/internal/domain" // Importing domain models
	"agri_commerce/internal/utils"  // Response cache
	"context"                       // Store operations
	"net/http"                      // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// OrderStore is the data access needed by the order handlers
type OrderStore interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	UpdateOrderStatus(ctx context.Context, id uint, status string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id uint) (*domain.Order, error)
}

// CreateOrderRequest is the body of POST /api/orders
type CreateOrderRequest struct {
	UserID     uint     `json:"user_id" binding:"required"`     // Ordering user, existence not checked
	TotalPrice *float64 `json:"total_price" binding:"required"` // Order total
	Status     string   `json:"status"`                         // Defaults to pending
}

// UpdateOrderRequest is the body of PUT /api/orders
type UpdateOrderRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,notblank"`
}

// ListOrdersHandler returns all orders
func ListOrdersHandler(s OrderStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveList(c, cache, utils.OrdersListKey, "orders", s.ListOrders)
	}
}

// CreateOrderHandler inserts an order, defaulting its status to pending
func CreateOrderHandler(s OrderStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		order := domain.Order{UserID: req.UserID, TotalPrice: *req.TotalPrice, Status: req.Status}
		if order.Status == "" {
			order.Status = domain.OrderStatusPending
		}
		if err := s.CreateOrder(c.Request.Context(), &order); err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"order_id": order.ID,     // Order ID
			"user_id":  order.UserID, // Ordering user
			"status":   order.Status, // Initial status
		}).Info("Order created")
		invalidate(c, cache, utils.OrdersListKey)
		c.JSON(http.StatusCreated, gin.H{"message": MsgOrderCreated, "order": order})
	}
}

// UpdateOrderHandler sets the status of an order
func UpdateOrderHandler(s OrderStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderRequest
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		order, err := s.UpdateOrderStatus(c.Request.Context(), req.ID, req.Status)
		if err != nil {
			respondError(c, translate(err, MsgOrderNotFound))
			return
		}
		logrus.WithFields(logrus.Fields{"order_id": order.ID, "status": order.Status}).Info("Order updated")
		invalidate(c, cache, utils.OrdersListKey)
		c.JSON(http.StatusOK, gin.H{"message": MsgOrderUpdated, "order": order})
	}
}

// DeleteOrderHandler removes an order and returns the removed row
func DeleteOrderHandler(s OrderStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteRequest
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		order, err := s.DeleteOrder(c.Request.Context(), req.ID)
		if err != nil {
			respondError(c, translate(err, MsgOrderNotFound))
			return
		}
		logrus.WithFields(logrus.Fields{"order_id": order.ID, "type": "delete_order"}).Info("Order deleted")
		invalidate(c, cache, utils.OrdersListKey)
		c.JSON(http.StatusOK, gin.H{"message": MsgOrderDeleted, "order": order})
	}
}
