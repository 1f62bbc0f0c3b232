package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Domain errors for parcel operations.
var (
	// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
	// ErrParcelAlreadyAssigned is returned when assigning a rider to a parcel
	// that already carries a different rider.
	ErrParcelAlreadyAssigned = errors.New("parcel already has a different rider assigned")
	// ErrTrackingIDIsRequired is returned when attempting to create a parcel without a tracking ID.
	ErrTrackingIDIsRequired = errs.NewValueIsRequiredError("trackingId")
	// ErrCreatedByIsRequired is returned when attempting to create a parcel without a sender email.
	ErrCreatedByIsRequired = errs.NewValueIsRequiredError("createdBy")
)

// Contact holds the sender or receiver details of a parcel.
type Contact struct {
	Name     string
	Phone    string
	Region   string
	District string
	Address  string
}

// RiderSnapshot is the denormalized copy of rider contact fields stored on a
// parcel at assignment time. It is a point-in-time snapshot: later edits to
// the Rider entity do not propagate back to parcels already assigned.
type RiderSnapshot struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	BikeRegNo string
}

// HistoryEntry is one record in a parcel's append-only audit trail.
// Entries are ordered by time and never rewritten.
type HistoryEntry struct {
	// Status is the combined "<parcelStatus> - <deliveryStatus>" label at the
	// moment of the transition.
	Status string
	Time   time.Time
	// By is the identity (email) of the actor who caused the transition.
	By string
	// Action is an optional machine-readable hint such as "picked_up".
	Action string
}

// Details groups the descriptive fields of a parcel that are set at creation
// and never change through the delivery workflow.
type Details struct {
	TrackingID    string
	Name          string
	Type          string
	Weight        float64
	DeliveryZone  string
	BaseCost      float64
	ExtraCharges  float64
	DeliveryCost  float64
	PaymentMethod string
	// CreatedBy is the sender's email.
	CreatedBy string
	Sender    Contact
	Receiver  Contact
}

// Parcel is the aggregate root for a delivery. It owns three independent
// status axes (parcelStatus, paymentStatus, deliveryStatus), the assigned
// rider snapshot, and an append-only history of transitions.
//
// Invariants:
//   - deliveryStatus only moves along the graph in status.go
//   - assignedRider is nil or points to exactly one rider, and once set it
//     cannot be replaced by a different rider while the delivery is active
//   - history is append-only and ordered by time
//   - earnings for a delivered parcel are credited at most once
type Parcel struct {
	id      kernel.UUID
	details Details

	parcelStatus   ParcelStatus
	paymentStatus  PaymentStatus
	deliveryStatus DeliveryStatus

	assignedRider    *RiderSnapshot
	earningsCredited bool
	history          []HistoryEntry

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a parcel in its initial state:
// {Processing, Pending, Not Dispatched}, no rider, empty history.
func NewParcel(id kernel.UUID, details Details) (*Parcel, error) {
	now := time.Now()
	p := &Parcel{
		parcelStatus:   StatusProcessing,
		paymentStatus:  PaymentPending,
		deliveryStatus: DeliveryNotDispatched,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage,
// including its status axes, rider snapshot, history, and the earnings flag.
// The restored parcel behaves identically to one built through domain operations.
func RestoreParcel(
	id kernel.UUID,
	details Details,
	parcelStatus ParcelStatus,
	paymentStatus PaymentStatus,
	deliveryStatus DeliveryStatus,
	assignedRider *RiderSnapshot,
	earningsCredited bool,
	history []HistoryEntry,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		earningsCredited: earningsCredited,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setDetails(details),
		p.setStatuses(parcelStatus, paymentStatus, deliveryStatus),
		p.setAssignedRider(assignedRider),
	); err != nil {
		return nil, err
	}

	p.history = make([]HistoryEntry, len(history))
	copy(p.history, history)

	return p, nil
}

// Validate ensures the Parcel was created through one of its constructors.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Details returns the descriptive fields set at creation.
func (p *Parcel) Details() Details {
	return p.details
}

// TrackingID returns the customer-facing tracking identifier.
func (p *Parcel) TrackingID() string {
	return p.details.TrackingID
}

// Status returns the coarse parcel status.
func (p *Parcel) Status() ParcelStatus {
	return p.parcelStatus
}

// PaymentStatus returns the payment status axis.
func (p *Parcel) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

// DeliveryStatus returns the fine-grained delivery status axis.
func (p *Parcel) DeliveryStatus() DeliveryStatus {
	return p.deliveryStatus
}

// AssignedRider returns a copy of the rider snapshot, or nil if unassigned.
func (p *Parcel) AssignedRider() *RiderSnapshot {
	if p.assignedRider == nil {
		return nil
	}
	snapshot := *p.assignedRider
	return &snapshot
}

// EarningsCredited reports whether delivery earnings were already credited
// to the rider's wallet for this parcel.
func (p *Parcel) EarningsCredited() bool {
	return p.earningsCredited
}

// History returns a copy of the append-only transition log, oldest first.
func (p *Parcel) History() []HistoryEntry {
	out := make([]HistoryEntry, len(p.history))
	copy(out, p.history)
	return out
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// AssignRider binds a rider to this parcel and drives the delivery status to
// {On the Way, rider_assigned}. This is the only operation permitted to move a
// parcel out of Not Dispatched.
//
// Business rules:
//   - A parcel already assigned to a different rider fails with
//     ErrParcelAlreadyAssigned
//   - Re-assigning the same rider is an idempotent no-op
//   - Assignment marks the parcel as paid and records the rider snapshot
//
// The actor (admin email) is recorded in the history entry.
func (p *Parcel) AssignRider(snapshot RiderSnapshot, by string) error {
	if err := snapshot.ID.Validate(); err != nil {
		return err
	}

	if p.assignedRider != nil {
		if !p.assignedRider.ID.IsEqual(snapshot.ID) {
			return ErrParcelAlreadyAssigned
		}
		// Same rider, nothing to do.
		return nil
	}

	newStatus, err := p.deliveryStatus.Assign()
	if err != nil {
		return err
	}

	p.assignedRider = &snapshot
	p.deliveryStatus = newStatus
	p.parcelStatus = parcelStatusFor(newStatus)
	p.paymentStatus = PaymentPaid
	p.appendHistory(by, "")

	return nil
}

// AdvanceDelivery moves the delivery status along a rider-driven edge:
// rider_assigned -> in_transit or in_transit -> delivered. Any other target
// fails with an *InvalidTransitionError carrying the attempted and current
// statuses. The coarse parcel status is derived from the new delivery status.
//
// The actor (rider email) and an optional action hint are recorded in the
// history entry.
func (p *Parcel) AdvanceDelivery(target DeliveryStatus, by string, action string) error {
	newStatus, err := p.deliveryStatus.Advance(target)
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	p.parcelStatus = parcelStatusFor(newStatus)
	p.appendHistory(by, action)

	return nil
}

// IsAssignedTo reports whether the given rider email matches the snapshot of
// the currently assigned rider.
func (p *Parcel) IsAssignedTo(riderEmail string) bool {
	return p.assignedRider != nil && riderEmail != "" && p.assignedRider.Email == riderEmail
}

// IsDelivered reports whether the parcel reached its terminal state.
func (p *Parcel) IsDelivered() bool {
	return p.deliveryStatus == DeliveryDelivered
}

// MarkPaid sets the payment status to Paid. Re-applying is a no-op, which
// makes external payment confirmations safe to replay.
func (p *Parcel) MarkPaid() {
	if p.paymentStatus == PaymentPaid {
		return
	}
	p.paymentStatus = PaymentPaid
	p.updatedAt = time.Now()
}

// MarkEarningsCredited flips the at-most-once earnings flag.
// Returns false if earnings for this parcel were already credited, in which
// case the caller must not credit the wallet again.
func (p *Parcel) MarkEarningsCredited() bool {
	if p.earningsCredited {
		return false
	}
	p.earningsCredited = true
	p.updatedAt = time.Now()
	return true
}

// appendHistory records a successful transition in the audit trail.
func (p *Parcel) appendHistory(by string, action string) {
	now := time.Now()
	p.history = append(p.history, HistoryEntry{
		Status: fmt.Sprintf("%s - %s", p.parcelStatus, p.deliveryStatus),
		Time:   now,
		By:     by,
		Action: action,
	})
	p.updatedAt = now
}

// setID validates and sets the parcel's unique identifier.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setDetails validates and sets the descriptive fields.
func (p *Parcel) setDetails(details Details) error {
	if details.TrackingID == "" {
		return ErrTrackingIDIsRequired
	}
	if details.CreatedBy == "" {
		return ErrCreatedByIsRequired
	}
	if details.Name == "" {
		return errs.NewValueIsRequiredError("parcelName")
	}
	if details.Weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not a valid weight", details.Weight),
		)
	}
	if details.DeliveryCost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryCost",
			fmt.Errorf("%v is not greater than 0", details.DeliveryCost),
		)
	}

	p.details = details
	return nil
}

// setStatuses validates and sets all three status axes during restoration.
func (p *Parcel) setStatuses(
	parcelStatus ParcelStatus,
	paymentStatus PaymentStatus,
	deliveryStatus DeliveryStatus,
) error {
	if err := errors.Join(
		parcelStatus.Validate(),
		paymentStatus.Validate(),
		deliveryStatus.Validate(),
	); err != nil {
		return err
	}

	p.parcelStatus = parcelStatus
	p.paymentStatus = paymentStatus
	p.deliveryStatus = deliveryStatus
	return nil
}

// setAssignedRider validates and sets the rider snapshot during restoration.
// The snapshot must be consistent with the delivery status: a parcel past
// Not Dispatched must carry a rider, and vice versa.
func (p *Parcel) setAssignedRider(snapshot *RiderSnapshot) error {
	if snapshot == nil {
		if p.deliveryStatus != DeliveryNotDispatched {
			return errs.NewValueIsInvalidErrorWithCause(
				"assignedRider",
				fmt.Errorf("status %s requires an assigned rider", p.deliveryStatus),
			)
		}
		return nil
	}

	if err := snapshot.ID.Validate(); err != nil {
		return err
	}
	if p.deliveryStatus == DeliveryNotDispatched {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignedRider",
			errors.New("status Not Dispatched cannot have an assigned rider"),
		)
	}

	copied := *snapshot
	p.assignedRider = &copied
	return nil
}
