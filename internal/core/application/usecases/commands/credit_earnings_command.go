package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreditEarningsCommandIsNotConstructed = errors.New(
	"CreditEarningsCommand must be created via NewCreditEarningsCommand constructor",
)

// CreditEarningsCommand represents a request to credit earnings to a
// rider's wallet for a delivered parcel.
type CreditEarningsCommand struct { //nolint:recvcheck //using for validation
	riderID     kernel.UUID
	parcelID    kernel.UUID
	amount      float64
	description string

	guard guard.ConstructorGuard
}

// NewCreditEarningsCommand creates a command to credit rider earnings.
// The description is optional; the wallet substitutes a default naming the
// parcel when it is empty.
func NewCreditEarningsCommand(
	riderID, parcelID kernel.UUID,
	amount float64,
	description string,
) (CreditEarningsCommand, error) {
	command := CreditEarningsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setParcelID(parcelID),
		command.setAmount(amount),
	); err != nil {
		return CreditEarningsCommand{}, err
	}
	command.description = description

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreditEarningsCommand) Validate() error {
	return c.guard.Validate(ErrCreditEarningsCommandIsNotConstructed)
}

// RiderID returns the wallet owner.
func (c CreditEarningsCommand) RiderID() kernel.UUID {
	return c.riderID
}

// ParcelID returns the delivered parcel the credit is for.
func (c CreditEarningsCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Amount returns the credit amount.
func (c CreditEarningsCommand) Amount() float64 {
	return c.amount
}

// Description returns the transaction description, possibly empty.
func (c CreditEarningsCommand) Description() string {
	return c.description
}

func (c *CreditEarningsCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *CreditEarningsCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreditEarningsCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is not greater than 0", amount),
		)
	}

	c.amount = amount
	return nil
}
