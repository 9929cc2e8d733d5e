package listing

import (
	"fmt"

	"agrilink/internal/pkg/errs"
)

// Status represents the lifecycle state of a listing.
//
// State transitions:
//
//	Available ──> Sold   (exactly when remaining quantity reaches 0)
//
// Sold is terminal and never reverts. Pending is a reserved reservation
// state: valid for persistence, reached by no in-scope operation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available is the initial status: the listing still has quantity for sale.
	Available

	// Pending is reserved for a reservation flow between listing and sale.
	Pending

	// Sold indicates the remaining quantity reached zero. Terminal.
	Sold
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Pending:   "Pending",
		Sold:      "Sold",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Pending:   "Pending",
		Sold:      "Sold",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Available, Pending, Sold.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Sold
}
