package domain

import "time"

// OrderStatusPending is the status given to orders created without one
const OrderStatusPending = "pending"

// Order Model
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`                           // Primary key
	UserID     uint      `gorm:"not null;index" json:"user_id"`                  // Ordering user, not checked by the API
	TotalPrice float64   `gorm:"not null" json:"total_price"`                    // Order total
	Status     string    `gorm:"size:50;not null;default:pending" json:"status"` // Free-form status
	CreatedAt  time.Time `json:"created_at"`                                     // Set by GORM on insert
}
