package domain

import "github.com/google/uuid"

// Category is a user-defined cash-flow category. Type is receita or despesa.
type Category struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Type string    `json:"type" db:"type"`
}
