package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateRiderStatusCommandIsNotConstructed = errors.New(
	"UpdateRiderStatusCommand must be created via NewUpdateRiderStatusCommand constructor",
)

// UpdateRiderStatusCommand represents an admin decision on a rider's
// approval status.
type UpdateRiderStatusCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	status  rider.Status

	guard guard.ConstructorGuard
}

// NewUpdateRiderStatusCommand creates a command to change a rider's status.
func NewUpdateRiderStatusCommand(riderID kernel.UUID, status rider.Status) (UpdateRiderStatusCommand, error) {
	command := UpdateRiderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setStatus(status),
	); err != nil {
		return UpdateRiderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRiderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderStatusCommandIsNotConstructed)
}

// RiderID returns the rider whose status changes.
func (c UpdateRiderStatusCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Status returns the new approval status.
func (c UpdateRiderStatusCommand) Status() rider.Status {
	return c.status
}

func (c *UpdateRiderStatusCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *UpdateRiderStatusCommand) setStatus(status rider.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
