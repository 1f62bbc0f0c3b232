package parcel

import (
	"errors"
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// ParcelStatus is the coarse customer-facing status of a parcel.
type ParcelStatus string

const (
	// StatusProcessing is the initial status of a newly created parcel.
	StatusProcessing ParcelStatus = "Processing"
	// StatusOnTheWay indicates a rider is assigned and the parcel is moving.
	StatusOnTheWay ParcelStatus = "On the Way"
	// StatusDelivered indicates the parcel reached its receiver.
	StatusDelivered ParcelStatus = "Delivered"
)

// Validate checks that the value is one of the defined parcel statuses.
func (s ParcelStatus) Validate() error {
	switch s {
	case StatusProcessing, StatusOnTheWay, StatusDelivered:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"parcelStatus",
		fmt.Errorf("%q is not a valid parcel status", string(s)),
	)
}

// PaymentStatus tracks whether the delivery cost has been paid.
// It is independent of the delivery workflow: a parcel can be paid
// before or at the moment of rider assignment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// Validate checks that the value is one of the defined payment statuses.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentPaid:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a valid payment status", string(s)),
	)
}

// DeliveryStatus is the fine-grained delivery workflow state of a parcel.
// It implements a state machine with a fixed directed graph:
//
//	Not Dispatched ──> rider_assigned ──> in_transit ──> delivered
//
// The first edge is reserved for the rider-assignment operation; riders
// advancing a delivery can only walk the remaining two edges.
type DeliveryStatus string

const (
	// DeliveryNotDispatched is the initial state before any rider is assigned.
	DeliveryNotDispatched DeliveryStatus = "Not Dispatched"
	// DeliveryRiderAssigned indicates a rider has accepted the parcel.
	DeliveryRiderAssigned DeliveryStatus = "rider_assigned"
	// DeliveryInTransit indicates the rider picked the parcel up.
	DeliveryInTransit DeliveryStatus = "in_transit"
	// DeliveryDelivered is the terminal state.
	DeliveryDelivered DeliveryStatus = "delivered"
)

// ErrInvalidTransition is the sentinel for delivery status transitions that do
// not follow the state machine graph. Use errors.Is to classify, and unwrap to
// *InvalidTransitionError for the attempted and current statuses.
var ErrInvalidTransition = errors.New("invalid delivery status transition")

// InvalidTransitionError carries diagnostics for a rejected status transition.
type InvalidTransitionError struct {
	From DeliveryStatus
	To   DeliveryStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// deliveryTransitions is the authoritative transition graph.
// A status missing from the map (delivered) is terminal.
func deliveryTransitions() map[DeliveryStatus]DeliveryStatus {
	return map[DeliveryStatus]DeliveryStatus{
		DeliveryNotDispatched: DeliveryRiderAssigned,
		DeliveryRiderAssigned: DeliveryInTransit,
		DeliveryInTransit:     DeliveryDelivered,
	}
}

// Validate checks that the value is one of the defined delivery statuses.
func (s DeliveryStatus) Validate() error {
	switch s {
	case DeliveryNotDispatched, DeliveryRiderAssigned, DeliveryInTransit, DeliveryDelivered:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus",
		fmt.Errorf("%q is not a valid delivery status", string(s)),
	)
}

// CanTransitionTo reports whether the graph contains an edge from s to target.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	next, ok := deliveryTransitions()[s]
	return ok && next == target
}

// Assign transitions the status to rider_assigned.
//
// Valid transitions:
//   - Not Dispatched -> rider_assigned
//
// This is the only way into rider_assigned and is reserved for the
// rider-assignment operation on the Parcel aggregate.
func (s DeliveryStatus) Assign() (DeliveryStatus, error) {
	if s != DeliveryNotDispatched {
		return "", &InvalidTransitionError{From: s, To: DeliveryRiderAssigned}
	}
	return DeliveryRiderAssigned, nil
}

// Advance transitions the status along a rider-driven edge of the graph.
//
// Valid transitions:
//   - rider_assigned -> in_transit
//   - in_transit -> delivered
//
// The assignment edge (Not Dispatched -> rider_assigned) is deliberately not
// reachable here; use Assign via the assignment operation instead.
func (s DeliveryStatus) Advance(target DeliveryStatus) (DeliveryStatus, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if target == DeliveryRiderAssigned || !s.CanTransitionTo(target) {
		return "", &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}

// IsTerminal reports whether the status has no outgoing edges.
func (s DeliveryStatus) IsTerminal() bool {
	_, ok := deliveryTransitions()[s]
	return !ok
}

// parcelStatusFor derives the coarse parcel status implied by a delivery status.
func parcelStatusFor(s DeliveryStatus) ParcelStatus {
	switch s {
	case DeliveryRiderAssigned, DeliveryInTransit:
		return StatusOnTheWay
	case DeliveryDelivered:
		return StatusDelivered
	default:
		return StatusProcessing
	}
}
