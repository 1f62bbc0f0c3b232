package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a confirmed gateway charge to be
// recorded against a parcel.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID     kernel.UUID
	parcelID      kernel.UUID
	email         string
	amount        float64
	transactionID string
	method        string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a confirmed charge.
// transactionID is the gateway's reference; recording the same reference
// twice is a no-op success.
func NewRecordPaymentCommand(
	paymentID, parcelID kernel.UUID,
	email string,
	amount float64,
	transactionID string,
	method string,
) (RecordPaymentCommand, error) {
	command := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPaymentID(paymentID),
		command.setParcelID(parcelID),
		command.setEmail(email),
		command.setAmount(amount),
		command.setTransactionID(transactionID),
	); err != nil {
		return RecordPaymentCommand{}, err
	}
	command.method = method

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment record.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ParcelID returns the parcel the charge pays for.
func (c RecordPaymentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Email returns the paying sender's email address.
func (c RecordPaymentCommand) Email() string {
	return c.email
}

// Amount returns the charged amount.
func (c RecordPaymentCommand) Amount() float64 {
	return c.amount
}

// TransactionID returns the gateway's transaction reference.
func (c RecordPaymentCommand) TransactionID() string {
	return c.transactionID
}

// Method returns the payment channel, possibly empty.
func (c RecordPaymentCommand) Method() string {
	return c.method
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RecordPaymentCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is not greater than 0", amount),
		)
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}

	c.transactionID = transactionID
	return nil
}
