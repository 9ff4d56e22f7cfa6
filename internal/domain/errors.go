package domain

import "errors"

// Sentinel errors returned by the store
var (
	ErrNotFound  = errors.New("record not found")       // No row matched the id
	ErrDuplicate = errors.New("duplicate key violation") // A unique index rejected the write
)

// FieldError describes one rejected request field
type FieldError struct {
	Field   string `json:"field"`   // JSON name of the field
	Message string `json:"message"` // Why it was rejected
}

// ValidationError is returned when request input is missing or malformed
type ValidationError struct {
	Message string       // Summary message
	Fields  []FieldError // Per-field details, may be empty
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError is returned when a uniqueness rule rejects a write
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError is returned when an operation targets a missing id
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// UnauthorizedError is returned when credentials do not match
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

// StoreError wraps any failure of the underlying database.
// Its message is the driver's message, unchanged.
type StoreError struct {
	Op  string // Store operation that failed
	Err error  // Underlying error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }
