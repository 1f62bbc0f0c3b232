package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel.
// Carries the full parcel details captured at booking time; the aggregate
// performs the deep validation of contacts and costs.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	details  parcel.Details

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
func NewCreateParcelCommand(parcelID kernel.UUID, details parcel.Details) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return CreateParcelCommand{}, err
	}
	command.details = details

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Details returns the parcel details captured at booking time.
func (c CreateParcelCommand) Details() parcel.Details {
	return c.details
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
