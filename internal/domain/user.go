package domain

// User Model
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`                       // Primary key
	Name  string `gorm:"size:100;not null" json:"name"`              // Display name
	Email string `gorm:"size:191;uniqueIndex;not null" json:"email"` // Normalized, unique email
}
