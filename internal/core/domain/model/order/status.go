package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Transition errors surfaced by the order state machine.
var (
	// ErrOrderAlreadyProcessed is returned when validation is attempted on an
	// order that has already left the Pending state. This makes validation
	// idempotent-safe: a second attempt always fails, never silently
	// re-validates.
	ErrOrderAlreadyProcessed = errors.New("order has already been validated or rejected")

	// ErrOrderAlreadyFinalized is returned when finalization is attempted on
	// an order that has already reached the terminal Finalized state.
	ErrOrderAlreadyFinalized = errors.New("order is already finalized")
)

// Status represents the lifecycle state of a marketplace order.
// It implements a state machine with defined transitions so orders follow
// the listing-to-finalization workflow in order.
//
// State transitions:
//
//	Pending ──┬──> Validated ──> DeliveryInProgress ──> DeliveryCompleted ──> Finalized
//	          │                        │         ^
//	          └──> Rejected            └─────────┘
//	                              (in-progress update is a no-op)
//
// Finalized and Rejected are terminal; no further transitions are permitted
// from either.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order,
	// waiting for an approved validator's decision.
	Pending

	// Validated indicates the order passed validation and is waiting for
	// the seller to assign a courier.
	Validated

	// Rejected indicates the order failed validation. Terminal.
	Rejected

	// DeliveryInProgress indicates a courier has been assigned and the
	// order is on its way.
	DeliveryInProgress

	// DeliveryCompleted indicates the courier reported the delivery as
	// done; finalization by seller and buyer is still outstanding.
	DeliveryCompleted

	// Finalized indicates both parties confirmed completion. Terminal.
	Finalized
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Pending:            "Pending",
		Validated:          "Validated",
		Rejected:           "Rejected",
		DeliveryInProgress: "DeliveryInProgress",
		DeliveryCompleted:  "DeliveryCompleted",
		Finalized:          "Finalized",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:            "Pending",
		Validated:          "Validated",
		Rejected:           "Rejected",
		DeliveryInProgress: "DeliveryInProgress",
		DeliveryCompleted:  "DeliveryCompleted",
		Finalized:          "Finalized",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used to vet Status values
// arriving from persistence before they enter the domain.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
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
	return s == Finalized || s == Rejected
}

// Approve transitions the status to Validated.
//
// Valid transitions:
//   - Pending -> Validated
//
// Any other current status fails with ErrOrderAlreadyProcessed, so an order
// can be decided exactly once.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, ErrOrderAlreadyProcessed
	}
	return Validated, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Any other current status fails with ErrOrderAlreadyProcessed.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, ErrOrderAlreadyProcessed
	}
	return Rejected, nil
}

// StartDelivery transitions the status to DeliveryInProgress.
//
// Valid transitions:
//   - Validated -> DeliveryInProgress
//
// Delivery can only start on a validated order; re-assignment of an order
// already in delivery is not permitted.
func (s Status) StartDelivery() (Status, error) {
	if s != Validated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start delivery", s.String()),
		)
	}
	return DeliveryInProgress, nil
}

// CompleteDelivery transitions the status to DeliveryCompleted.
//
// Valid transitions:
//   - DeliveryInProgress -> DeliveryCompleted
func (s Status) CompleteDelivery() (Status, error) {
	if s != DeliveryInProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete delivery", s.String()),
		)
	}
	return DeliveryCompleted, nil
}

// Finalize transitions the status to Finalized.
//
// Valid transitions:
//   - DeliveryCompleted -> Finalized
//
// A repeated finalization attempt fails with ErrOrderAlreadyFinalized;
// any other status is an invalid-transition error.
func (s Status) Finalize() (Status, error) {
	if s == Finalized {
		return 0, ErrOrderAlreadyFinalized
	}
	if s != DeliveryCompleted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to finalize", s.String()),
		)
	}
	return Finalized, nil
}
