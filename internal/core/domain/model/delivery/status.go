package delivery

import (
	"fmt"

	"agrilink/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	    │                         ▲
//	    └─────────────────────────┘
//	  (confirmation without a pickup scan)
//
// Delivered is terminal; re-confirmation is treated by the aggregate as an
// idempotent no-op rather than a transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status when the delivery is created with its order.
	Pending

	// InTransit indicates the delivery agent picked up the goods.
	InTransit

	// Delivered indicates physical drop-off was confirmed. Terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InTransit, Delivered.
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

// Start transitions the status to InTransit. Valid only from Pending.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"delivery already started",
			fmt.Errorf("%s is not a valid status to start transit", s),
		)
	}
	return InTransit, nil
}
