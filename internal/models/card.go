package models

import (
	"time"
)

// Card represents a single unit of work on the board
type Card struct {
	ID          string    `json:"id"`                    // Unique identifier (e.g., "PRJ-001")
	Title       string    `json:"title"`                 // Card title
	Description string    `json:"description,omitempty"` // Optional detailed description
	ColumnID    string    `json:"column_id"`             // Current column
	Assignee    string    `json:"assignee,omitempty"`    // Optional assignee name
	CreatedAt   time.Time `json:"created_at"`            // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at"`            // Last update timestamp
}

// NewCard creates a new card in the given column
func NewCard(id, title, columnID string) *Card {
	now := time.Now().UTC()
	return &Card{
		ID:        id,
		Title:     title,
		ColumnID:  columnID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
