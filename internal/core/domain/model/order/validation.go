package order

import (
	"errors"
	"fmt"
	"regexp"

	"orderdesk/internal/pkg/errs"
)

var orderNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]*$`)

// ValidateLineItem checks a candidate before it may become part of a draft: product
// reference present, name non-empty, unit price > 0 and quantity > 0. Every violated
// rule is reported, wrapped in ErrInvalidLineItem.
func ValidateLineItem(candidate LineItemCandidate) error {
	var violations []error

	if candidate.ProductID == nil {
		violations = append(violations, errs.NewValueIsRequiredError("product"))
	}
	if candidate.Name == "" {
		violations = append(violations, errs.NewValueIsRequiredError("name"))
	}
	if !candidate.UnitPrice.IsPositive() {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is not greater than 0", candidate.UnitPrice),
		))
	}
	if candidate.Quantity <= 0 {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", candidate.Quantity),
		))
	}

	if len(violations) == 0 {
		return nil
	}
	return invalidLineItem(errors.Join(violations...))
}

// ValidateOrderNumber applies the character rule only: letters and digits.
// The empty string passes; ValidateOrder is what requires a value.
func ValidateOrderNumber(value string) error {
	if !orderNumberPattern.MatchString(value) {
		return ErrInvalidOrderNumber
	}
	return nil
}

// ValidateOrder decides whether a draft may be persisted. It returns the first
// violated rule only, checking the order number before the line items.
func ValidateOrder(draft *Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	if draft.OrderNumber() == "" {
		return newOrderInvalidError(ReasonOrderNumberRequired, nil)
	}
	if err := ValidateOrderNumber(draft.OrderNumber()); err != nil {
		return newOrderInvalidError(ReasonOrderNumberCharacters, err)
	}
	if len(draft.lineItems) == 0 {
		return newOrderInvalidError(ReasonNoLineItems, nil)
	}

	return nil
}
