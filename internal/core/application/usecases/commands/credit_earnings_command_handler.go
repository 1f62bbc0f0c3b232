package commands

import (
	"context"
)

// CreditEarningsCommandHandler applies an earnings credit to a rider's
// wallet, creating the wallet on first use.
type CreditEarningsCommandHandler struct {
	uowFactory WalletUoWFactory
}

// NewCreditEarningsCommandHandler creates a handler for earnings credits.
func NewCreditEarningsCommandHandler(uowFactory WalletUoWFactory) CreditEarningsCommandHandler {
	return CreditEarningsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the earnings credit command.
// The wallet is created lazily when the rider has none yet.
func (h CreditEarningsCommandHandler) Handle(ctx context.Context, cmd CreditEarningsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := creditWallet(
		ctx,
		uow.WalletRepository(),
		cmd.RiderID(),
		cmd.ParcelID(),
		cmd.Amount(),
		cmd.Description(),
	); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
