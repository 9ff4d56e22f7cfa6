package api

import (
	"agri_commerce/internal/domain" // Importing domain models
	"agri_commerce/internal/utils"  // Response cache
	"context"                       // Store operations
	"net/http"                      // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// PaymentStore is the data access needed by the payment handlers
type PaymentStore interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	GetPayment(ctx context.Context, id uint) (*domain.Payment, error)
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	UpdatePaymentStatus(ctx context.Context, id uint, status string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id uint) error
}

// CreatePaymentRequest is the body of POST /api/payments
type CreatePaymentRequest struct {
	OrderID       uint     `json:"order_id" binding:"required"`
	Amount        *float64 `json:"amount" binding:"required"`
	PaymentMethod string   `json:"payment_method" binding:"required,notblank"`
	Status        string   `json:"status"` // Defaults to pending
}

// UpdatePaymentRequest is the body of PUT /api/payments/:id
type UpdatePaymentRequest struct {
	Status string `json:"status" binding:"required,notblank"`
}

// ListPaymentsHandler returns all payments by ascending id
func ListPaymentsHandler(s PaymentStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveList(c, cache, utils.PaymentsListKey, "payments", s.ListPayments)
	}
}

// GetPaymentHandler returns one payment
func GetPaymentHandler(s PaymentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		payment, err := s.GetPayment(c.Request.Context(), id)
		if err != nil {
			respondError(c, translate(err, MsgPaymentNotFound))
			return
		}
		c.JSON(http.StatusOK, gin.H{"payment": payment})
	}
}

// CreatePaymentHandler records a payment for an order
func CreatePaymentHandler(s PaymentStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentRequest
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		payment := domain.Payment{
			OrderID:       req.OrderID,
			Amount:        *req.Amount,
			PaymentMethod: req.PaymentMethod,
			Status:        req.Status,
		}
		if payment.Status == "" {
			payment.Status = domain.PaymentStatusPending
		}
		if err := s.CreatePayment(c.Request.Context(), &payment); err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"payment_id": payment.ID,            // Payment ID
			"order_id":   payment.OrderID,       // Paid order
			"amount":     payment.Amount,        // Amount
			"method":     payment.PaymentMethod, // Payment method
		}).Info("Payment created")
		invalidate(c, cache, utils.PaymentsListKey)
		c.JSON(http.StatusCreated, gin.H{"message": MsgPaymentCreated, "payment": payment})
	}
}

// UpdatePaymentHandler sets the status of a payment
func UpdatePaymentHandler(s PaymentStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		var req UpdatePaymentRequest
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		payment, err := s.UpdatePaymentStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondError(c, translate(err, MsgPaymentNotFound))
			return
		}
		logrus.WithFields(logrus.Fields{"payment_id": payment.ID, "status": payment.Status}).Info("Payment updated")
		invalidate(c, cache, utils.PaymentsListKey)
		c.JSON(http.StatusOK, gin.H{"message": MsgPaymentUpdated, "payment": payment})
	}
}

// DeletePaymentHandler removes a payment and answers with no body
func DeletePaymentHandler(s PaymentStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := s.DeletePayment(c.Request.Context(), id); err != nil {
			respondError(c, translate(err, MsgPaymentNotFound))
			return
		}
		logrus.WithFields(logrus.Fields{"payment_id": id, "type": "delete_payment"}).Info("Payment deleted")
		invalidate(c, cache, utils.PaymentsListKey)
		c.Status(http.StatusNoContent)
	}
}
