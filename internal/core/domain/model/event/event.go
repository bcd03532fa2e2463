package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through the NewEvent or RestoreEvent factory methods.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Domain event names emitted by marketplace operations.
const (
	ProductListed         = "product.listed"
	OrderCreated          = "order.created"
	OrderValidated        = "order.validated"
	DeliveryAssigned      = "delivery.assigned"
	DeliveryStatusUpdated = "delivery.status_updated"
	OrderFinalized        = "order.finalized"
	ValidatorApproved     = "validator.approved"
)

// Typed payloads carried by the events above. Field values are copied from
// the mutated aggregate at emission time, so the log always mirrors the
// stored record as of the moment the transition committed.
type (
	// ProductListedPayload accompanies ProductListed.
	ProductListedPayload struct {
		ProductID int64  `json:"product_id"`
		Name      string `json:"name"`
		Price     int64  `json:"price"`
	}

	// OrderCreatedPayload accompanies OrderCreated.
	OrderCreatedPayload struct {
		OrderID   int64  `json:"order_id"`
		ProductID int64  `json:"product_id"`
		BuyerID   string `json:"buyer_id"`
	}

	// OrderValidatedPayload accompanies OrderValidated for both outcomes;
	// Approved distinguishes acceptance from rejection.
	OrderValidatedPayload struct {
		OrderID  int64 `json:"order_id"`
		Approved bool  `json:"approved"`
	}

	// DeliveryAssignedPayload accompanies DeliveryAssigned.
	DeliveryAssignedPayload struct {
		OrderID   int64  `json:"order_id"`
		CourierID string `json:"courier_id"`
	}

	// DeliveryStatusUpdatedPayload accompanies DeliveryStatusUpdated.
	DeliveryStatusUpdatedPayload struct {
		OrderID int64  `json:"order_id"`
		Status  string `json:"status"`
	}

	// OrderFinalizedPayload accompanies OrderFinalized.
	OrderFinalizedPayload struct {
		OrderID int64 `json:"order_id"`
	}

	// ValidatorApprovedPayload accompanies ValidatorApproved.
	ValidatorApprovedPayload struct {
		ValidatorID string `json:"validator_id"`
		ApprovedBy  string `json:"approved_by"`
	}
)

// Event is one immutable entry of the marketplace event log. Events are
// appended in the same transaction as the state change they describe and
// relayed to external consumers afterwards; PublishedAt tracks the relay.
//
// The log is append-only and totally ordered by the sequential id assigned
// at persistence time (0 until the entry is stored).
type Event struct {
	// id is the sequential log position, assigned by the event log
	id int64

	// name identifies the event type, one of the constants above
	name string

	// key groups events of one aggregate for ordered consumption
	key string

	// payload is the JSON-encoded typed payload
	payload json.RawMessage

	// occurredAt is when the transition was recorded
	occurredAt time.Time

	// publishedAt is when the relay delivered the event (nil while pending)
	publishedAt *time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates a log entry for the given event name and payload.
// The payload is marshaled immediately so a malformed payload fails the
// emitting transition instead of poisoning the relay.
func NewEvent(name, key string, payload any) (*Event, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if key == "" {
		return nil, errs.NewValueIsRequiredError("key")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	return &Event{
		name:       name,
		key:        key,
		payload:    data,
		occurredAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreEvent reconstructs a log entry from persistence.
func RestoreEvent(id int64, name, key string, payload json.RawMessage, occurredAt time.Time, publishedAt *time.Time) (*Event, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid event id", id))
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if key == "" {
		return nil, errs.NewValueIsRequiredError("key")
	}

	return &Event{
		id:          id,
		name:        name,
		key:         key,
		payload:     payload,
		occurredAt:  occurredAt,
		publishedAt: publishedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the event was created through a factory method.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the sequential log position, 0 for unpersisted events.
func (e *Event) ID() int64 {
	return e.id
}

// Name returns the event type name.
func (e *Event) Name() string {
	return e.name
}

// Key returns the aggregate grouping key.
func (e *Event) Key() string {
	return e.key
}

// Payload returns the JSON-encoded payload.
func (e *Event) Payload() json.RawMessage {
	return e.payload
}

// OccurredAt returns when the transition was recorded.
func (e *Event) OccurredAt() time.Time {
	return e.occurredAt
}

// PublishedAt returns when the relay delivered the event, nil while pending.
func (e *Event) PublishedAt() *time.Time {
	return e.publishedAt
}

// MarkAppended records the log position assigned at persistence time.
// A position already held is never overwritten.
func (e *Event) MarkAppended(id int64) {
	if e.id == 0 && id > 0 {
		e.id = id
	}
}

// IsPublished reports whether the relay has delivered the event.
func (e *Event) IsPublished() bool {
	return e.publishedAt != nil
}

// MarkPublished records the relay delivery time.
func (e *Event) MarkPublished(at time.Time) {
	published := at.UTC()
	e.publishedAt = &published
}

// ProductKey builds the grouping key for product-scoped events.
func ProductKey(productID int64) string {
	return fmt.Sprintf("product-%d", productID)
}

// OrderKey builds the grouping key for order-scoped events.
func OrderKey(orderID int64) string {
	return fmt.Sprintf("order-%d", orderID)
}

// ValidatorKey builds the grouping key for validator registry events.
func ValidatorKey(validatorID string) string {
	return fmt.Sprintf("validator-%s", validatorID)
}
