package ui

// sessionState identifies which view the session is in. Each state carries
// its own data on the Model; transitions happen only inside Update.
type sessionState int

const (
	// stateBoard is the default view: browsing columns and cards
	stateBoard sessionState = iota

	// stateCardDetail shows one card's full fields
	stateCardDetail

	// stateCardForm edits a draft for creating or editing a card
	stateCardForm

	// stateMoveCard picks a target column for the detail view's card
	stateMoveCard

	// stateConfirmDelete awaits a yes/no answer before deleting
	stateConfirmDelete
)

// formMode distinguishes what submitting the card form does
type formMode int

const (
	formCreate formMode = iota
	formEdit
)

// confirmDelete holds the target card and where to go back to on deny.
// Keeping both together means a confirmation can never exist without
// a target.
type confirmDelete struct {
	cardID   string
	returnTo sessionState
}
