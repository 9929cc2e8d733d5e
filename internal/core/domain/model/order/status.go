package order

import (
	"fmt"

	"agrilink/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> InDelivery ──> Delivered ──> Completed
//	    │                          ▲
//	    └──────────────────────────┘
//	  (confirmation without a pickup scan)
//
// Completed is reached only by payment release and is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status when an order is created by a purchase.
	Pending

	// InDelivery indicates the paired delivery left for the buyer.
	InDelivery

	// Delivered indicates the paired delivery was physically confirmed.
	Delivered

	// Completed indicates payment was released to the farmer. Terminal.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InDelivery: "InDelivery",
		Delivered:  "Delivered",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InDelivery: "InDelivery",
		Delivered:  "Delivered",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InDelivery, Delivered, Completed.
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

// StartDelivery transitions the status to InDelivery.
// Valid only from Pending.
func (s Status) StartDelivery() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"delivery already started",
			fmt.Errorf("%s is not a valid status to start delivery", s),
		)
	}
	return InDelivery, nil
}

// MarkDelivered transitions the status to Delivered.
// Valid from Pending (confirmation without a pickup scan) and InDelivery.
func (s Status) MarkDelivered() (Status, error) {
	if s != Pending && s != InDelivery {
		return 0, errs.NewConflictErrorWithCause(
			"order already delivered",
			fmt.Errorf("%s is not a valid status to mark delivered", s),
		)
	}
	return Delivered, nil
}

// Complete transitions the status to Completed.
// Valid only from Delivered; Completed is terminal, so a repeat completion
// surfaces as a conflict.
func (s Status) Complete() (Status, error) {
	if s == Completed {
		return 0, errs.NewConflictError("payment already released")
	}
	if s != Delivered {
		return 0, errs.NewConflictErrorWithCause(
			"order is not delivered",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return Completed, nil
}
