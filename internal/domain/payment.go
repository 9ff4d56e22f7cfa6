package domain

import "time"

// PaymentStatusPending is the status given to payments created without one
const PaymentStatusPending = "pending"

// Payment Model
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`                           // Primary key
	OrderID       uint      `gorm:"not null;index" json:"order_id"`                 // Paid order
	Amount        float64   `gorm:"not null" json:"amount"`                         // Amount paid
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`         // e.g. card, mobile_money
	Status        string    `gorm:"size:50;not null;default:pending" json:"status"` // Free-form status
	CreatedAt     time.Time `json:"created_at"`                                     // Set by GORM on insert
}
