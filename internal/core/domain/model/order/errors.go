package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLineItem covers unresolved product references, missing names and
	// non-positive prices or quantities.
	ErrInvalidLineItem = errors.New("invalid line item")

	// ErrInvalidOrderNumber is the character-rule violation for order numbers.
	ErrInvalidOrderNumber = errors.New("order number can only contain letters and numbers")

	// ErrOrderInvalid is the sentinel behind every *OrderInvalidError.
	ErrOrderInvalid = errors.New("order is invalid")

	// ErrOrderLocked is returned for any mutation attempted on a Completed draft.
	ErrOrderLocked = errors.New("order is completed and can no longer be changed")

	// ErrOrderNumberImmutable is returned when the order number of a persisted order is edited.
	ErrOrderNumberImmutable = errors.New("order number cannot be changed once the order is saved")

	// ErrLineItemIndexOutOfRange is returned for update/remove positions that do not exist.
	ErrLineItemIndexOutOfRange = errors.New("line item index out of range")
)

// Reasons reported by ValidateOrder, in the order the rules are checked.
const (
	ReasonOrderNumberRequired   = "order number required"
	ReasonOrderNumberCharacters = "order number can only contain letters and numbers"
	ReasonNoLineItems           = "order must contain at least one item"
)

// OrderInvalidError carries the single rule a draft failed at save time.
type OrderInvalidError struct {
	Reason string
	Cause  error
}

func newOrderInvalidError(reason string, cause error) *OrderInvalidError {
	return &OrderInvalidError{Reason: reason, Cause: cause}
}

func (e *OrderInvalidError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderInvalid, e.Reason)
}

// Unwrap exposes both ErrOrderInvalid and the underlying rule error, if any.
func (e *OrderInvalidError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrOrderInvalid}
	}
	return []error{ErrOrderInvalid, e.Cause}
}

func invalidLineItem(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidLineItem, cause)
}
