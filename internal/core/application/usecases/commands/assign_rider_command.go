package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents a back-office request to bind a rider
// to a parcel for delivery.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	riderID    kernel.UUID
	assignedBy string

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a rider to a parcel.
// assignedBy identifies the admin performing the assignment and is recorded
// in the parcel's status history.
func NewAssignRiderCommand(parcelID, riderID kernel.UUID, assignedBy string) (AssignRiderCommand, error) {
	command := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setRiderID(riderID),
		command.setAssignedBy(assignedBy),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// ParcelID returns the parcel being dispatched.
func (c AssignRiderCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderID returns the rider being bound to the parcel.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// AssignedBy returns the identity of the admin performing the assignment.
func (c AssignRiderCommand) AssignedBy() string {
	return c.assignedBy
}

func (c *AssignRiderCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *AssignRiderCommand) setAssignedBy(assignedBy string) error {
	if assignedBy == "" {
		return errs.NewValueIsRequiredError("assignedBy")
	}

	c.assignedBy = assignedBy
	return nil
}
