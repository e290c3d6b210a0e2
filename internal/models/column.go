package models

// Column represents a workflow stage on the board.
// Cards reference their column by ID; the column itself holds no card list.
type Column struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "todo", "in_progress")
	Name  string `json:"name"`  // Human-readable display name
	Order int    `json:"order"` // Position in the board (0 = leftmost)
}

// NewColumn creates a new column
func NewColumn(id, name string, order int) Column {
	return Column{
		ID:    id,
		Name:  name,
		Order: order,
	}
}
