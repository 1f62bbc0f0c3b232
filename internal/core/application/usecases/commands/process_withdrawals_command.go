package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrProcessWithdrawalsCommandIsNotConstructed = errors.New(
	"ProcessWithdrawalsCommand must be created via NewProcessWithdrawalsCommand constructor",
)

// ProcessWithdrawalsCommand triggers the settlement pass over all wallets
// with pending withdrawals. Run periodically by the job scheduler.
//
// Example:
//
//	cmd := NewProcessWithdrawalsCommand()
//	handler := NewProcessWithdrawalsCommandHandler(uowFactory)
//
//	ticker := time.NewTicker(time.Minute)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Withdrawal settlement failed: %v", err)
//	    }
//	}
type ProcessWithdrawalsCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessWithdrawalsCommand creates a command to trigger withdrawal
// settlement. This is a parameterless batch command.
func NewProcessWithdrawalsCommand() ProcessWithdrawalsCommand {
	command := ProcessWithdrawalsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *ProcessWithdrawalsCommand) Validate() error {
	return c.guard.Validate(ErrProcessWithdrawalsCommandIsNotConstructed)
}
