package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	Pending ──> InProgress ──> Completed
//
// The arrow is the expected direction only. Any status may be selected while the
// draft is not Completed; Completed is terminal because it locks the draft.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of every new order.
	Pending

	// InProgress marks an order that is being worked on.
	InProgress

	// Completed locks the order against further changes.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Statuses lists the selectable statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Completed}
}

// ParseStatus maps the wire names "Pending", "InProgress" and "Completed".
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of Pending, InProgress, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsLocking reports whether a draft in this status is read-only.
func (s Status) IsLocking() bool {
	return s == Completed
}
