package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// CreateRiderCommand represents a rider onboarding application.
// New riders start in pending status awaiting admin approval.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	profile rider.Profile

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to register a rider application.
// The profile's identity and vehicle checks are performed by the aggregate.
func NewCreateRiderCommand(riderID kernel.UUID, profile rider.Profile) (CreateRiderCommand, error) {
	command := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRiderID(riderID); err != nil {
		return CreateRiderCommand{}, err
	}
	command.profile = profile

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the identifier for the new rider.
func (c CreateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Profile returns the applicant's profile.
func (c CreateRiderCommand) Profile() rider.Profile {
	return c.profile
}

func (c *CreateRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
