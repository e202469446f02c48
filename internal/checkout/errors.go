package checkout

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrSubmissionInFlight = errors.New("an order submission is already in progress for this session")
)

// FieldError reports the first customer field that failed validation.
// Validation short-circuits, so one submission yields at most one.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}
