package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNotOrderSeller is returned when a seller-only operation is attempted
	// by an identity other than the order's seller snapshot.
	ErrNotOrderSeller = errors.New("caller is not the seller of this order")

	// ErrNotOrderBuyer is returned when a buyer-only operation is attempted
	// by an identity other than the order's buyer.
	ErrNotOrderBuyer = errors.New("caller is not the buyer of this order")

	// ErrNotAssignedCourier is returned when a delivery update is attempted
	// by an identity other than the assigned courier.
	ErrNotAssignedCourier = errors.New("caller is not the assigned courier for this order")

	// ErrCompletionNotRequested is returned when the buyer confirms completion
	// before the seller has completed the order.
	ErrCompletionNotRequested = errors.New("seller has not completed the order yet")

	// ErrDeliveryNotCompleted is returned when the seller requests completion
	// before the courier has reported the delivery done.
	ErrDeliveryNotCompleted = errors.New("delivery is not completed for this order")
)

// Order represents one buyer's purchase of a product. It is the aggregate
// root of the marketplace ledger and carries the order through validation,
// delivery, and the two-party finalization handshake.
//
// Order follows these invariants:
//   - id is a sequential integer, 1 or greater
//   - productID references a product that existed at creation time
//   - sellerID is a snapshot of the product's seller taken at creation;
//     it is never re-resolved afterwards
//   - status transitions follow the Status state machine
//   - every identity-gated mutation verifies the caller against the
//     recorded buyer, seller, or courier
//
// Orders are never deleted; terminal orders stay in the ledger as permanent
// history.
type Order struct {
	// id is the sequential ledger identifier
	id int64

	// productID references the ordered product
	productID int64

	// buyerID is the identity that created the order
	buyerID kernel.UUID

	// sellerID is the product's seller, snapshotted at creation time
	sellerID kernel.UUID

	// validatorID is the identity that decided validation (nil before)
	validatorID *kernel.UUID

	// courierID is the assigned courier (nil if unassigned)
	courierID *kernel.UUID

	// isValidated is true once an approved validator accepted the order
	isValidated bool

	// completionRequested is true once the seller completed the order,
	// arming the buyer's confirmation step
	completionRequested bool

	// status is the current state in the order lifecycle
	status Status

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending status for the given product.
// The seller identity must be the product's seller at creation time; the
// aggregate keeps it as a snapshot from then on.
func NewOrder(id, productID int64, buyerID, sellerID kernel.UUID) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status, validation outcome, and assignment state.
func RestoreOrder(
	id, productID int64,
	buyerID, sellerID kernel.UUID,
	validatorID, courierID *kernel.UUID,
	isValidated, completionRequested bool,
	status Status,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if validatorID != nil {
		if err := validatorID.Validate(); err != nil {
			return nil, err
		}
		o.validatorID = validatorID
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		o.courierID = courierID
	}

	o.isValidated = isValidated
	o.completionRequested = completionRequested
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their ledger identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the sequential ledger identifier.
func (o *Order) ID() int64 {
	return o.id
}

// ProductID returns the ordered product's identifier.
func (o *Order) ProductID() int64 {
	return o.productID
}

// Buyer returns the identity that created the order.
func (o *Order) Buyer() kernel.UUID {
	return o.buyerID
}

// Seller returns the seller snapshot taken at creation time.
func (o *Order) Seller() kernel.UUID {
	return o.sellerID
}

// ValidatorID returns the identity that decided validation.
// Returns nil while the order is still Pending.
func (o *Order) ValidatorID() *kernel.UUID {
	return o.validatorID
}

// Courier returns the assigned courier's identity.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// IsValidated reports whether an approved validator accepted the order.
func (o *Order) IsValidated() bool {
	return o.isValidated
}

// CompletionRequested reports whether the seller has completed the order,
// arming the buyer's confirmation step.
func (o *Order) CompletionRequested() bool {
	return o.completionRequested
}

// Status returns the current state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Approve records a validator's acceptance. The order must still be Pending;
// otherwise ErrOrderAlreadyProcessed is returned and nothing changes.
// Membership of validatorID in the allow-list is checked by the application
// layer before this is called.
func (o *Order) Approve(validatorID kernel.UUID) error {
	if err := validatorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.isValidated = true
	o.validatorID = &validatorID
	return nil
}

// Reject records a validator's rejection, moving the order to the terminal
// Rejected state. Same Pending-only guard as Approve.
func (o *Order) Reject(validatorID kernel.UUID) error {
	if err := validatorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.validatorID = &validatorID
	return nil
}

// AssignCourier assigns a courier to a validated order and starts delivery.
// Only the order's seller may assign; callers with any other identity fail
// with ErrNotOrderSeller regardless of order status.
func (o *Order) AssignCourier(caller, courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if !o.sellerID.IsEqual(caller) {
		return ErrNotOrderSeller
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// UpdateDelivery records a delivery progress report from the assigned courier.
// Callers other than the assigned courier fail with ErrNotAssignedCourier
// regardless of order status.
//
// With completed == false the order stays in DeliveryInProgress (an explicit
// no-op transition); with completed == true it moves to DeliveryCompleted.
func (o *Order) UpdateDelivery(caller kernel.UUID, completed bool) error {
	if o.courierID == nil || !o.courierID.IsEqual(caller) {
		return ErrNotAssignedCourier
	}

	if !completed {
		if o.status != DeliveryInProgress {
			return errs.NewValueIsInvalidErrorWithCause(
				"status",
				fmt.Errorf("%s is not a valid status to report delivery progress", o.status.String()),
			)
		}
		return nil
	}

	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RequestCompletion records the seller's half of the finalization handshake.
// Only the order's seller may complete, and only once delivery is reported
// done. The order stays in DeliveryCompleted; the recorded flag arms the
// buyer's confirmation.
func (o *Order) RequestCompletion(caller kernel.UUID) error {
	if !o.sellerID.IsEqual(caller) {
		return ErrNotOrderSeller
	}
	if o.status == Finalized {
		return ErrOrderAlreadyFinalized
	}
	if o.status != DeliveryCompleted {
		return ErrDeliveryNotCompleted
	}

	o.completionRequested = true
	return nil
}

// ConfirmCompletion records the buyer's half of the finalization handshake
// and performs the irrevocable transition to Finalized. It requires the
// seller's completion first and fails with ErrOrderAlreadyFinalized on a
// repeated confirmation.
func (o *Order) ConfirmCompletion(caller kernel.UUID) error {
	if !o.buyerID.IsEqual(caller) {
		return ErrNotOrderBuyer
	}
	if o.status == Finalized {
		return ErrOrderAlreadyFinalized
	}
	if !o.completionRequested {
		return ErrCompletionNotRequested
	}

	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid order id", id))
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not a valid product id", productID))
	}
	o.productID = productID
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
