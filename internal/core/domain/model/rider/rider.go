package rider

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

const (
	// minRiderAge and maxRiderAge bound the onboarding age requirement.
	minRiderAge = 18
	maxRiderAge = 65
)

// Domain errors for rider operations.
var (
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrRiderBusy is returned when binding a rider who is already carrying a
	// different active delivery.
	ErrRiderBusy = errors.New("rider is already assigned to another delivery")
	// ErrEmailIsRequired is returned when attempting to create a rider without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrNIDIsRequired is returned when attempting to create a rider without a national ID.
	ErrNIDIsRequired = errs.NewValueIsRequiredError("nid")
)

// Status is the approval state of a rider application.
type Status string

const (
	// StatusPending is the initial state of a new application.
	StatusPending Status = "pending"
	// StatusApproved marks a rider cleared to take deliveries.
	StatusApproved Status = "approved"
	// StatusRejected marks a declined application.
	StatusRejected Status = "rejected"
	// StatusDeactivated marks a previously approved rider taken off duty.
	StatusDeactivated Status = "deactivate"
)

// Validate checks that the value is one of the defined rider statuses.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDeactivated:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid rider status", string(s)),
	)
}

// Profile groups the descriptive fields of a rider captured at onboarding.
type Profile struct {
	Name      string
	Email     string
	Age       int
	Phone     string
	Region    string
	District  string
	NID       string
	BikeBrand string
	BikeRegNo string
}

// Rider is the aggregate root for a delivery rider. It owns the approval
// status and the back-reference to the rider's single active delivery.
//
// Invariants:
//   - currentDelivery is nil or refers to exactly one parcel
//   - a rider with a non-nil currentDelivery cannot be bound to a second,
//     different parcel
//   - the reference is cleared exactly when that parcel is delivered
type Rider struct {
	id      kernel.UUID
	profile Profile
	status  Status

	// currentDelivery is a weak reference to the active parcel: relation
	// only, not ownership.
	currentDelivery *kernel.UUID

	appliedAt time.Time

	guard guard.ConstructorGuard
}

// NewRider creates a rider in the pending approval state with no active delivery.
func NewRider(id kernel.UUID, profile Profile) (*Rider, error) {
	r := &Rider{
		status:    StatusPending,
		appliedAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a Rider aggregate from persistent storage.
func RestoreRider(
	id kernel.UUID,
	profile Profile,
	status Status,
	currentDelivery *kernel.UUID,
	appliedAt time.Time,
) (*Rider, error) {
	r := &Rider{
		appliedAt: appliedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProfile(profile),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	if currentDelivery != nil {
		if err := currentDelivery.Validate(); err != nil {
			return nil, err
		}
		copied := *currentDelivery
		r.currentDelivery = &copied
	}

	return r, nil
}

// Validate ensures the Rider was created through one of its constructors.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Profile returns the rider's onboarding details.
func (r *Rider) Profile() Profile {
	return r.profile
}

// Email returns the rider's email.
func (r *Rider) Email() string {
	return r.profile.Email
}

// Status returns the approval status.
func (r *Rider) Status() Status {
	return r.status
}

// CurrentDelivery returns a copy of the active parcel reference, or nil if idle.
func (r *Rider) CurrentDelivery() *kernel.UUID {
	if r.currentDelivery == nil {
		return nil
	}
	copied := *r.currentDelivery
	return &copied
}

// AppliedAt returns when the rider applied.
func (r *Rider) AppliedAt() time.Time {
	return r.appliedAt
}

// UpdateStatus moves the application to a new approval status.
func (r *Rider) UpdateStatus(status Status) error {
	return r.setStatus(status)
}

// StartDelivery binds the rider to a parcel. A rider already bound to a
// different parcel fails with ErrRiderBusy; re-binding to the same parcel is
// an idempotent no-op.
func (r *Rider) StartDelivery(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	if r.currentDelivery != nil {
		if r.currentDelivery.IsEqual(parcelID) {
			return nil
		}
		return ErrRiderBusy
	}

	r.currentDelivery = &parcelID
	return nil
}

// CompleteDelivery releases the rider from the given parcel. Called exactly
// when that parcel reaches its terminal delivered state.
func (r *Rider) CompleteDelivery(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	if r.currentDelivery == nil || !r.currentDelivery.IsEqual(parcelID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"currentDelivery",
			fmt.Errorf("rider is not carrying parcel %s", parcelID),
		)
	}

	r.currentDelivery = nil
	return nil
}

// setID validates and sets the rider's unique identifier.
func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setProfile validates and sets the onboarding details.
func (r *Rider) setProfile(profile Profile) error {
	if profile.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if profile.Email == "" {
		return ErrEmailIsRequired
	}
	if profile.NID == "" {
		return ErrNIDIsRequired
	}
	if profile.Age < minRiderAge || profile.Age > maxRiderAge {
		return errs.NewValueIsOutOfRangeError("age", profile.Age, minRiderAge, maxRiderAge)
	}

	r.profile = profile
	return nil
}

// setStatus validates and sets the approval status.
func (r *Rider) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
