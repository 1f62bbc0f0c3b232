package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a rider's request to advance a
// parcel along the delivery status graph.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	target     parcel.DeliveryStatus
	riderEmail string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to advance a parcel's
// delivery status. riderEmail identifies the acting rider; only the rider
// currently assigned to the parcel may advance it.
func NewUpdateDeliveryStatusCommand(
	parcelID kernel.UUID,
	target parcel.DeliveryStatus,
	riderEmail string,
) (UpdateDeliveryStatusCommand, error) {
	command := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setTarget(target),
		command.setRiderEmail(riderEmail),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel being advanced.
func (c UpdateDeliveryStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Target returns the requested delivery status.
func (c UpdateDeliveryStatusCommand) Target() parcel.DeliveryStatus {
	return c.target
}

// RiderEmail returns the acting rider's email address.
func (c UpdateDeliveryStatusCommand) RiderEmail() string {
	return c.riderEmail
}

func (c *UpdateDeliveryStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target parcel.DeliveryStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateDeliveryStatusCommand) setRiderEmail(riderEmail string) error {
	if riderEmail == "" {
		return errs.NewValueIsRequiredError("riderEmail")
	}

	c.riderEmail = riderEmail
	return nil
}
