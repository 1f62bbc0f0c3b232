package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrRequestCashOutCommandIsNotConstructed = errors.New(
	"RequestCashOutCommand must be created via NewRequestCashOutCommand constructor",
)

// RequestCashOutCommand represents a rider's request to withdraw earnings
// through a payout channel. The wallet is addressed by the caller's verified
// email, a rider can only cash out their own wallet.
type RequestCashOutCommand struct { //nolint:recvcheck //using for validation
	riderEmail  string
	amount      float64
	method      wallet.WithdrawalMethod
	accountInfo wallet.AccountInfo

	guard guard.ConstructorGuard
}

// NewRequestCashOutCommand creates a command to queue a cash-out request.
// The amount range and balance checks belong to the wallet aggregate; the
// command only validates identity and payout method.
func NewRequestCashOutCommand(
	riderEmail string,
	amount float64,
	method wallet.WithdrawalMethod,
	accountInfo wallet.AccountInfo,
) (RequestCashOutCommand, error) {
	command := RequestCashOutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderEmail(riderEmail),
		command.setMethod(method),
	); err != nil {
		return RequestCashOutCommand{}, err
	}
	command.amount = amount
	command.accountInfo = accountInfo

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCashOutCommand) Validate() error {
	return c.guard.Validate(ErrRequestCashOutCommandIsNotConstructed)
}

// RiderEmail returns the verified email of the wallet owner.
func (c RequestCashOutCommand) RiderEmail() string {
	return c.riderEmail
}

// Amount returns the requested withdrawal amount.
func (c RequestCashOutCommand) Amount() float64 {
	return c.amount
}

// Method returns the payout channel.
func (c RequestCashOutCommand) Method() wallet.WithdrawalMethod {
	return c.method
}

// AccountInfo returns the payout account details.
func (c RequestCashOutCommand) AccountInfo() wallet.AccountInfo {
	return c.accountInfo
}

func (c *RequestCashOutCommand) setRiderEmail(riderEmail string) error {
	if riderEmail == "" {
		return errs.NewValueIsRequiredError("riderEmail")
	}

	c.riderEmail = riderEmail
	return nil
}

func (c *RequestCashOutCommand) setMethod(method wallet.WithdrawalMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
