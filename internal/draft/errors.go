package draft

import "fmt"

// ValidationError is a local precondition failure caught before any network
// call. It is surfaced next to the offending field and never forwarded to
// the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidItemError means a catalog item without an identifier was offered to
// AddItem. The add is refused and the draft stays unchanged.
type InvalidItemError struct {
	Name string
}

func (e *InvalidItemError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("menu item %q has no identifier", e.Name)
	}
	return "menu item has no identifier"
}
