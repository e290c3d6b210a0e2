package models

import (
	"errors"
)

// Validation errors
var (
	// ErrEmptyTitle is returned when a card title is empty after trimming
	ErrEmptyTitle = errors.New("title is required")
)

// Lookup errors
var (
	// ErrCardNotFound is returned when a card ID does not exist on the board
	ErrCardNotFound = errors.New("card not found")

	// ErrColumnNotFound is returned when a column ID does not exist on the board
	ErrColumnNotFound = errors.New("column not found")
)
